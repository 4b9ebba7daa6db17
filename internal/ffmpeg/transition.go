package ffmpeg

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SplitCrossfadeOptions configures a midpoint transition built from a
// single clip: the clip's grayscale first half cross-fades into its
// own color second half.
type SplitCrossfadeOptions struct {
	Duration     time.Duration // duration of the input clip
	Overlap      time.Duration // cross-fade length
	HasAudio     bool
	Output       string
	ProgressFunc ProgressFunc
}

// SplitCrossfade splits the input at its midpoint and renders the
// grayscale-to-color reveal inside it. The grayscale branch runs to
// the midpoint plus overlap; the color branch starts at the true
// midpoint, so the output keeps the input's duration.
func (e *Executor) SplitCrossfade(ctx context.Context, input string, opts SplitCrossfadeOptions) error {
	if opts.Duration <= 0 {
		return fmt.Errorf("clip duration is required")
	}
	if opts.Overlap <= 0 {
		return fmt.Errorf("overlap must be positive")
	}

	mid := opts.Duration / 2

	e.logger.Info().
		Str("input", input).
		Str("output", opts.Output).
		Dur("midpoint", mid).
		Dur("overlap", opts.Overlap).
		Msg("building midpoint crossfade")

	var filters []string
	filters = append(filters,
		fmt.Sprintf("[0:v]trim=end=%.3f,setpts=PTS-STARTPTS,hue=s=0,format=yuv420p[bw]",
			(mid+opts.Overlap).Seconds()),
		fmt.Sprintf("[0:v]trim=start=%.3f,setpts=PTS-STARTPTS[color]", mid.Seconds()),
		fmt.Sprintf("[bw][color]xfade=transition=fade:duration=%.3f:offset=%.3f[v]",
			opts.Overlap.Seconds(), mid.Seconds()),
	)
	if opts.HasAudio {
		filters = append(filters,
			fmt.Sprintf("[0:a]atrim=end=%.3f,asetpts=PTS-STARTPTS[abw]",
				(mid+opts.Overlap).Seconds()),
			fmt.Sprintf("[0:a]atrim=start=%.3f,asetpts=PTS-STARTPTS[acolor]", mid.Seconds()),
			fmt.Sprintf("[abw][acolor]acrossfade=d=%.3f[a]", opts.Overlap.Seconds()),
		)
	}

	args := []string{
		"-i", input,
		"-filter_complex", strings.Join(filters, ";"),
		"-map", "[v]",
	}
	if opts.HasAudio {
		args = append(args, "-map", "[a]")
	}
	args = append(args, e.encodeArgs()...)
	args = append(args, opts.Output)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("midpoint crossfade")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("midpoint crossfade failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("midpoint crossfade complete")
	return nil
}

// CrossfadeMergeOptions configures a transition built from two clips:
// the first plays fully grayscale and cross-fades into the second,
// which stays in color.
type CrossfadeMergeOptions struct {
	GrayDuration time.Duration // duration of the grayscale input clip
	Overlap      time.Duration // cross-fade length
	HasAudio     bool
	Output       string
	ProgressFunc ProgressFunc
}

// CrossfadeMerge composites the two inputs into a single clip. The
// color clip begins `overlap` seconds before the grayscale clip ends.
func (e *Executor) CrossfadeMerge(ctx context.Context, grayInput, colorInput string, opts CrossfadeMergeOptions) error {
	if opts.GrayDuration <= 0 {
		return fmt.Errorf("grayscale clip duration is required")
	}
	if opts.Overlap <= 0 {
		return fmt.Errorf("overlap must be positive")
	}

	offset := opts.GrayDuration - opts.Overlap
	if offset < 0 {
		offset = 0
	}

	e.logger.Info().
		Str("gray", grayInput).
		Str("color", colorInput).
		Str("output", opts.Output).
		Dur("offset", offset).
		Dur("overlap", opts.Overlap).
		Msg("merging clips with crossfade")

	var filters []string
	filters = append(filters,
		"[0:v]hue=s=0,format=yuv420p[bw]",
		fmt.Sprintf("[bw][1:v]xfade=transition=fade:duration=%.3f:offset=%.3f[v]",
			opts.Overlap.Seconds(), offset.Seconds()),
	)
	if opts.HasAudio {
		filters = append(filters,
			fmt.Sprintf("[0:a][1:a]acrossfade=d=%.3f[a]", opts.Overlap.Seconds()),
		)
	}

	args := []string{
		"-i", grayInput,
		"-i", colorInput,
		"-filter_complex", strings.Join(filters, ";"),
		"-map", "[v]",
	}
	if opts.HasAudio {
		args = append(args, "-map", "[a]")
	}
	args = append(args, e.encodeArgs()...)
	args = append(args, opts.Output)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("crossfade merge")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("crossfade merge failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("crossfade merge complete")
	return nil
}
