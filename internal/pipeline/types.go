package pipeline

import "time"

// Options configures a single mementoize run.
type Options struct {
	// SkipStart drops detected cuts before this offset.
	SkipStart time.Duration
	// SkipEnd drops detected cuts after this offset.
	SkipEnd time.Duration
	// MinSceneLength is the minimum spacing between accepted cuts.
	MinSceneLength time.Duration
	// Threshold is the ffmpeg scene-score threshold (0-1).
	Threshold float64
	// Overlap is how long adjacent scenes share footage and how long
	// the grayscale-to-color cross-fade runs.
	Overlap time.Duration
	// Cuts, when non-empty, bypasses scene detection entirely.
	Cuts []time.Duration
	// Verbose prints the detected and final cut lists.
	Verbose bool
	// DryRun prints cut lists and stops before any file is written.
	// Implies Verbose.
	DryRun bool
}
