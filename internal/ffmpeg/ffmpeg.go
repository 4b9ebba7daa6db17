// Package ffmpeg wraps the ffmpeg and ffprobe binaries: scene-change
// detection, scene extraction, cross-fade composites, spacer
// generation, and concatenation. All invocations stream ffmpeg's
// diagnostic output through handlers so callers can parse it or log it.
package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Executor handles all ffmpeg operations with progress streaming
type Executor struct {
	logger      zerolog.Logger
	ffmpegPath  string
	ffprobePath string
	threads     int
	encode      EncodeSettings
}

// New creates an executor, resolving the ffmpeg and ffprobe binaries
// up front so a missing install fails before any work starts.
func New(logger zerolog.Logger, settings Settings) (*Executor, error) {
	ffmpegPath := settings.BinaryPath
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	ffmpegPath, err := exec.LookPath(ffmpegPath)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}

	ffprobePath := settings.ProbePath
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	ffprobePath, err = exec.LookPath(ffprobePath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found: %w", err)
	}

	return &Executor{
		logger:      logger.With().Str("component", "ffmpeg").Logger(),
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		threads:     settings.Threads,
		encode:      settings.Encode.withDefaults(),
	}, nil
}

// encodeArgs returns the shared re-encode arguments for output files.
func (e *Executor) encodeArgs() []string {
	return []string{
		"-c:v", e.encode.VideoCodec,
		"-preset", e.encode.Preset,
		"-crf", fmt.Sprintf("%d", e.encode.CRF),
		"-pix_fmt", "yuv420p",
		"-c:a", e.encode.AudioCodec,
	}
}

// Run executes ffmpeg with the given arguments and streams output
func (e *Executor) Run(ctx context.Context, opts RunOptions) error {
	if len(opts.Args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	baseArgs := []string{"-y", "-hide_banner", "-loglevel", "info"}
	if e.threads > 0 {
		baseArgs = append(baseArgs, "-threads", fmt.Sprintf("%d", e.threads))
	}
	baseArgs = append(baseArgs, "-progress", "pipe:2")
	args := append(baseArgs, opts.Args...)

	e.logger.Debug().
		Str("cmd", "ffmpeg").
		Strs("args", args).
		Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	// Diagnostics and progress arrive on stderr
	go func() {
		defer wg.Done()
		e.streamOutput(stderr, opts.ProgressHandler, opts.LogHandler)
	}()

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			if opts.LogHandler != nil {
				opts.LogHandler(scanner.Text())
			}
		}
	}()

	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() == context.Canceled {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg execution failed: %w", err)
	}

	e.logger.Debug().Msg("ffmpeg execution completed")
	return nil
}

// streamOutput parses ffmpeg stderr and calls handlers
func (e *Executor) streamOutput(r io.Reader, progressHandler ProgressFunc, logHandler func(string)) {
	scanner := bufio.NewScanner(r)
	progressData := &Progress{}

	for scanner.Scan() {
		line := scanner.Text()

		if logHandler != nil {
			logHandler(line)
		}

		if strings.HasPrefix(line, "frame=") {
			fmt.Sscanf(line, "frame=%d", &progressData.Frame)
		} else if strings.HasPrefix(line, "fps=") {
			fmt.Sscanf(line, "fps=%f", &progressData.FPS)
		} else if strings.HasPrefix(line, "bitrate=") {
			if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
				progressData.Bitrate = strings.TrimSpace(parts[1])
			}
		} else if strings.HasPrefix(line, "time=") {
			if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
				progressData.Time = strings.TrimSpace(parts[1])
			}
		} else if strings.HasPrefix(line, "speed=") {
			if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
				progressData.Speed = strings.TrimSpace(parts[1])
			}
		} else if strings.HasPrefix(line, "progress=") {
			if progressHandler != nil && progressData.Frame > 0 {
				progressHandler(progressData)
			}
			progressData = &Progress{}
		}
	}
}
