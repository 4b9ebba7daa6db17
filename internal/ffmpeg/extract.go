package ffmpeg

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanfox/mementoizer/pkg/util"
)

// SceneOptions defines scene extraction parameters
type SceneOptions struct {
	Start        time.Duration
	End          time.Duration // zero means run to the end of the source
	FadeIn       time.Duration
	Grayscale    bool
	Output       string
	ProgressFunc ProgressFunc
}

// ExtractScene renders one scene of the source to its own file,
// re-encoding so the fade-in and grayscale filters apply.
func (e *Executor) ExtractScene(ctx context.Context, input string, opts SceneOptions) error {
	if opts.End > 0 && opts.End <= opts.Start {
		return fmt.Errorf("invalid scene bounds: end must be after start")
	}

	e.logger.Info().
		Str("input", input).
		Str("output", opts.Output).
		Dur("start", opts.Start).
		Dur("end", opts.End).
		Bool("grayscale", opts.Grayscale).
		Msg("extracting scene")

	args := []string{
		"-i", input,
		"-ss", util.FormatDuration(opts.Start),
	}
	if opts.End > 0 {
		args = append(args, "-t", util.FormatDuration(opts.End-opts.Start))
	}

	fb := NewFilterBuilder()
	if opts.Grayscale {
		fb.Grayscale()
	}
	if opts.FadeIn > 0 {
		fb.FadeIn(opts.FadeIn)
	}
	if filter := fb.Build(); filter != "" {
		args = append(args, "-vf", filter)
	}

	args = append(args, e.encodeArgs()...)
	args = append(args, opts.Output)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("scene extraction")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("scene extraction failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("scene extraction complete")
	return nil
}
