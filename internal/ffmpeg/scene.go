package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

var ptsTimePattern = regexp.MustCompile(`pts_time:([\d.]+)`)

// DetectScenes finds scene-change timestamps using ffmpeg's scene
// score filter. Frames scoring above threshold are passed to showinfo,
// whose pts_time markers on stderr give the cut timestamps in seconds,
// in emission order.
func (e *Executor) DetectScenes(ctx context.Context, input string, threshold float64) ([]time.Duration, error) {
	e.logger.Info().
		Str("input", input).
		Float64("threshold", threshold).
		Msg("detecting scene changes")

	var stderrBuf bytes.Buffer
	var mu sync.Mutex

	opts := RunOptions{
		Args: []string{
			"-i", input,
			"-vf", fmt.Sprintf("select='gt(scene,%f)',showinfo", threshold),
			"-f", "null",
			"-",
		},
		LogHandler: func(line string) {
			mu.Lock()
			stderrBuf.WriteString(line + "\n")
			mu.Unlock()
			e.logger.Debug().Str("stderr", line).Msg("scene detection output")
		},
	}

	err := e.Run(ctx, opts)

	mu.Lock()
	output := stderrBuf.String()
	mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// The null muxer run can report conversion noise even when the
		// showinfo output is complete; only real failures propagate.
		if !strings.Contains(err.Error(), "Conversion failed") &&
			!strings.Contains(err.Error(), "Invalid return value") &&
			!strings.Contains(err.Error(), "Output file is empty") {
			return nil, fmt.Errorf("scene detection failed: %w", err)
		}
	}

	scenes := ParseSceneTimestamps(output)
	e.logger.Info().Int("scenes", len(scenes)).Msg("scene detection complete")
	return scenes, nil
}

// ParseSceneTimestamps extracts every pts_time marker from ffmpeg
// showinfo diagnostics and parses each as seconds.
func ParseSceneTimestamps(output string) []time.Duration {
	var scenes []time.Duration
	for _, match := range ptsTimePattern.FindAllStringSubmatch(output, -1) {
		if seconds, err := strconv.ParseFloat(match[1], 64); err == nil {
			scenes = append(scenes, time.Duration(seconds*float64(time.Second)))
		}
	}
	return scenes
}
