package ffmpeg

import (
	"context"
	"fmt"
	"time"
)

// SpacerOptions configures the solid black spacer clip inserted
// between scenes. Frame size and rate should match the source so the
// concat step sees uniform streams.
type SpacerOptions struct {
	Width        int
	Height       int
	FPS          float64
	Duration     time.Duration
	WithAudio    bool // generate a silent audio track
	Output       string
	ProgressFunc ProgressFunc
}

// GenerateSpacer renders a solid black clip from lavfi sources.
func (e *Executor) GenerateSpacer(ctx context.Context, opts SpacerOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("spacer frame size is required")
	}
	if opts.Duration <= 0 {
		return fmt.Errorf("spacer duration must be positive")
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = 25
	}

	e.logger.Info().
		Int("width", opts.Width).
		Int("height", opts.Height).
		Dur("duration", opts.Duration).
		Bool("audio", opts.WithAudio).
		Str("output", opts.Output).
		Msg("generating spacer clip")

	args := []string{
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=black:s=%dx%d:r=%.3f:d=%.3f",
			opts.Width, opts.Height, fps, opts.Duration.Seconds()),
	}
	if opts.WithAudio {
		args = append(args,
			"-f", "lavfi",
			"-i", "anullsrc=channel_layout=stereo:sample_rate=48000",
			"-shortest",
		)
	}
	args = append(args, e.encodeArgs()...)
	args = append(args, opts.Output)

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("spacer generation")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("spacer generation failed: %w", err)
	}

	return nil
}
