package memento

import "time"

// CutOptions controls which detected cuts survive filtering. Zero
// values disable the corresponding step.
type CutOptions struct {
	// SkipStart drops cuts before this offset.
	SkipStart time.Duration
	// SkipEnd drops cuts after this offset. Note this is an absolute
	// timestamp, not seconds-before-end; callers wanting "leave the
	// last N seconds alone" must convert against the source duration.
	SkipEnd time.Duration
	// MinSceneLength drops cuts closer than this to the previously
	// accepted cut. When enabled the result always starts at 0.
	MinSceneLength time.Duration
}

// FilterCuts turns raw detected cut timestamps into the final cut
// list: apply the skip windows, then enforce the minimum scene length
// by walking the cuts in order and accepting only those far enough
// past the last accepted one.
func FilterCuts(raw []time.Duration, opts CutOptions) []time.Duration {
	cuts := raw

	if opts.SkipStart > 0 {
		kept := make([]time.Duration, 0, len(cuts))
		for _, cut := range cuts {
			if cut >= opts.SkipStart {
				kept = append(kept, cut)
			}
		}
		cuts = kept
	}

	if opts.SkipEnd > 0 {
		kept := make([]time.Duration, 0, len(cuts))
		for _, cut := range cuts {
			if cut <= opts.SkipEnd {
				kept = append(kept, cut)
			}
		}
		cuts = kept
	}

	if opts.MinSceneLength > 0 {
		accepted := []time.Duration{0}
		for _, cut := range cuts {
			if accepted[len(accepted)-1]+opts.MinSceneLength <= cut {
				accepted = append(accepted, cut)
			}
		}
		cuts = accepted
	}

	return cuts
}
