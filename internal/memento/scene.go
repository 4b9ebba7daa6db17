// Package memento holds the pure editing logic behind the mementoize
// effect: cut filtering, scene planning, outside-in interleaving, and
// transition planning. Nothing in this package touches ffmpeg or the
// filesystem, so all of it is testable without media files.
package memento

import "time"

// Scene is a planned segment of the source video. Boundaries are
// absolute offsets into the source; every scene receives a fixed
// fade-in when rendered.
type Scene struct {
	Start     time.Duration
	End       time.Duration
	Grayscale bool
}

// Duration returns the planned length of the scene.
func (s Scene) Duration() time.Duration {
	return s.End - s.Start
}

// FadeIn is the fade-in applied to the head of every rendered scene.
const FadeIn = 500 * time.Millisecond

// SplitScenes plans one scene per cut. Scene i spans from cuts[i] to
// cuts[i+1] plus overlap, so adjacent scenes share `overlap` seconds of
// footage for cross-fading. The last scene runs to the end of the
// source. End boundaries are clamped to the source duration.
func SplitScenes(cuts []time.Duration, total time.Duration, overlap time.Duration) []Scene {
	scenes := make([]Scene, 0, len(cuts))
	for i, cut := range cuts {
		end := total
		if i+1 < len(cuts) {
			end = cuts[i+1] + overlap
			if end > total {
				end = total
			}
		}
		scenes = append(scenes, Scene{Start: cut, End: end})
	}
	return scenes
}
