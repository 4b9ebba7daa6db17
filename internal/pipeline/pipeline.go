// Package pipeline orchestrates the mementoize run: detect cuts,
// filter them, split the source into scenes, interleave outside-in,
// render the grayscale-to-color transition, and concatenate the result
// with spacer clips into the output file.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ryanfox/mementoizer/internal/config"
	"github.com/ryanfox/mementoizer/internal/ffmpeg"
	"github.com/ryanfox/mementoizer/internal/memento"
	"github.com/ryanfox/mementoizer/pkg/util"
)

// Pipeline runs the mementoize effect end to end.
type Pipeline struct {
	logger zerolog.Logger
	config *config.Config
	ffmpeg *ffmpeg.Executor
}

// New creates a pipeline instance backed by the configured ffmpeg
// binaries.
func New(logger zerolog.Logger, cfg *config.Config) (*Pipeline, error) {
	exec, err := ffmpeg.New(logger, ffmpeg.Settings{
		BinaryPath: cfg.FFmpeg.BinaryPath,
		ProbePath:  cfg.FFmpeg.ProbePath,
		Threads:    cfg.FFmpeg.Threads,
		Encode: ffmpeg.EncodeSettings{
			Preset: cfg.FFmpeg.Preset,
			CRF:    cfg.FFmpeg.CRF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ffmpeg: %w", err)
	}

	return &Pipeline{
		logger: logger.With().Str("component", "pipeline").Logger(),
		config: cfg,
		ffmpeg: exec,
	}, nil
}

// Mementoize processes the input video and returns the output path.
// With DryRun set it prints the cut lists and returns an empty path
// without writing anything.
func (p *Pipeline) Mementoize(ctx context.Context, input string, opts Options) (string, error) {
	if input == "" {
		return "", fmt.Errorf("input path cannot be empty")
	}

	cuts := opts.Cuts
	if len(cuts) == 0 {
		detected, err := p.ffmpeg.DetectScenes(ctx, input, opts.Threshold)
		if err != nil {
			return "", err
		}
		cuts = detected

		if opts.Verbose || opts.DryRun {
			fmt.Println("cuts detected at")
			fmt.Println(util.FormatCutList(cuts))
		}
	}

	cuts = memento.FilterCuts(cuts, memento.CutOptions{
		SkipStart:      opts.SkipStart,
		SkipEnd:        opts.SkipEnd,
		MinSceneLength: opts.MinSceneLength,
	})

	if opts.Verbose || opts.DryRun {
		fmt.Printf("%d final cuts at:\n", len(cuts))
		fmt.Println(util.FormatCutList(cuts))
	}

	p.logger.Info().
		Int("cuts", len(cuts)).
		Str("final_cuts", util.FormatCutList(cuts)).
		Msg("cut list ready")

	if opts.DryRun {
		p.logger.Info().Msg("dry run, stopping before render")
		return "", nil
	}

	info, err := p.ffmpeg.ProbeVideo(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to probe video: %w", err)
	}

	p.logger.Info().
		Dur("duration", info.Duration).
		Int("width", info.Width).
		Int("height", info.Height).
		Float64("fps", info.FPS).
		Bool("has_audio", info.HasAudio).
		Msg("video metadata extracted")

	scenes := memento.SplitScenes(cuts, info.Duration, opts.Overlap)
	order := memento.Interleave(scenes)
	head, transition, err := memento.PlanTransition(order, opts.Overlap)
	if err != nil {
		return "", err
	}

	p.logger.Info().
		Int("scenes", len(scenes)).
		Stringer("transition", transition.Kind).
		Msg("edit planned")

	scratch, err := p.scratchDir()
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(scratch)

	clipFiles := make([]string, 0, len(head)+1)
	for i, scene := range head {
		out := filepath.Join(scratch, fmt.Sprintf("scene_%03d.mp4", i))
		err := p.ffmpeg.ExtractScene(ctx, input, ffmpeg.SceneOptions{
			Start:     scene.Start,
			End:       scene.End,
			FadeIn:    memento.FadeIn,
			Grayscale: scene.Grayscale,
			Output:    out,
		})
		if err != nil {
			return "", err
		}
		clipFiles = append(clipFiles, out)
	}

	transitionFile, err := p.renderTransition(ctx, input, scratch, transition, info.HasAudio)
	if err != nil {
		return "", err
	}
	clipFiles = append(clipFiles, transitionFile)

	spacerFile := filepath.Join(scratch, "spacer.mp4")
	err = p.ffmpeg.GenerateSpacer(ctx, ffmpeg.SpacerOptions{
		Width:     info.Width,
		Height:    info.Height,
		FPS:       info.FPS,
		Duration:  p.config.Edit.SpacerDuration(),
		WithAudio: info.HasAudio,
		Output:    spacerFile,
	})
	if err != nil {
		return "", err
	}

	// Playback order: each clip followed by a spacer, trailing spacer
	// included.
	concatInputs := make([]string, 0, len(clipFiles)*2)
	for _, clip := range clipFiles {
		concatInputs = append(concatInputs, clip, spacerFile)
	}

	output := util.OutputPath(input)
	err = p.ffmpeg.Concat(ctx, ffmpeg.ConcatOptions{
		Inputs:   concatInputs,
		Output:   output,
		ReEncode: true,
	})
	if err != nil {
		return "", err
	}

	p.logger.Info().Str("output", output).Msg("mementoize complete")
	return output, nil
}

// renderTransition renders the grayscale-to-color composite. The
// scenes involved are extracted in color first (fade-in included) and
// the grayscale treatment is applied inside the cross-fade filter
// graph, matching how the rest of the edit layers its filters.
func (p *Pipeline) renderTransition(ctx context.Context, input, scratch string, tr memento.Transition, hasAudio bool) (string, error) {
	output := filepath.Join(scratch, "transition.mp4")

	switch tr.Kind {
	case memento.SplitMidpoint:
		src := filepath.Join(scratch, "transition_src.mp4")
		err := p.ffmpeg.ExtractScene(ctx, input, ffmpeg.SceneOptions{
			Start:  tr.Grayscale.Start,
			End:    tr.Grayscale.End,
			FadeIn: memento.FadeIn,
			Output: src,
		})
		if err != nil {
			return "", err
		}

		// Probe the rendered clip rather than trusting the planned
		// bounds; the encoder may land on a slightly different
		// duration.
		info, err := p.ffmpeg.ProbeVideo(ctx, src)
		if err != nil {
			return "", fmt.Errorf("failed to probe transition clip: %w", err)
		}

		err = p.ffmpeg.SplitCrossfade(ctx, src, ffmpeg.SplitCrossfadeOptions{
			Duration: info.Duration,
			Overlap:  tr.Overlap,
			HasAudio: hasAudio,
			Output:   output,
		})
		if err != nil {
			return "", err
		}

	case memento.MergePair:
		graySrc := filepath.Join(scratch, "transition_gray.mp4")
		err := p.ffmpeg.ExtractScene(ctx, input, ffmpeg.SceneOptions{
			Start:  tr.Grayscale.Start,
			End:    tr.Grayscale.End,
			FadeIn: memento.FadeIn,
			Output: graySrc,
		})
		if err != nil {
			return "", err
		}

		colorSrc := filepath.Join(scratch, "transition_color.mp4")
		err = p.ffmpeg.ExtractScene(ctx, input, ffmpeg.SceneOptions{
			Start:  tr.Color.Start,
			End:    tr.Color.End,
			FadeIn: memento.FadeIn,
			Output: colorSrc,
		})
		if err != nil {
			return "", err
		}

		info, err := p.ffmpeg.ProbeVideo(ctx, graySrc)
		if err != nil {
			return "", fmt.Errorf("failed to probe transition clip: %w", err)
		}

		err = p.ffmpeg.CrossfadeMerge(ctx, graySrc, colorSrc, ffmpeg.CrossfadeMergeOptions{
			GrayDuration: info.Duration,
			Overlap:      tr.Overlap,
			HasAudio:     hasAudio,
			Output:       output,
		})
		if err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("unknown transition kind %v", tr.Kind)
	}

	return output, nil
}

// scratchDir creates a unique per-run working directory.
func (p *Pipeline) scratchDir() (string, error) {
	base := p.config.TempDir
	if base == "" {
		base = os.TempDir()
	}

	dir := filepath.Join(base, "mementoize-"+uuid.NewString())
	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create scratch dir: %w", err)
	}

	p.logger.Debug().Str("dir", dir).Msg("created scratch dir")
	return dir, nil
}
