package memento

import (
	"fmt"
	"time"
)

// TransitionKind selects how the grayscale-to-color reveal is built,
// which depends on the parity of the interleaved scene count.
type TransitionKind int

const (
	// SplitMidpoint splits the final scene at its midpoint: the first
	// half plays grayscale and cross-fades into the color second half.
	SplitMidpoint TransitionKind = iota
	// MergePair plays the entire second-to-last scene grayscale and
	// cross-fades into the color last scene, merging the two into one
	// composite.
	MergePair
)

func (k TransitionKind) String() string {
	switch k {
	case SplitMidpoint:
		return "split-midpoint"
	case MergePair:
		return "merge-pair"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
}

// Transition describes the single grayscale-to-color composite that
// closes the edit. It always occupies the final playback position.
type Transition struct {
	Kind TransitionKind
	// Grayscale is the scene that fades out. For SplitMidpoint it is
	// the scene being split in two.
	Grayscale Scene
	// Color is the scene that fades in. Only set for MergePair.
	Color Scene
	// Overlap is the cross-fade duration.
	Overlap time.Duration
}

// PlanTransition consumes the tail of the interleaved order and
// returns the scenes that render normally plus the transition plan.
// With an even scene count the last scene alone becomes the composite,
// so the playback length is unchanged; with an odd count the last two
// scenes merge and the length shrinks by one.
func PlanTransition(order []Scene, overlap time.Duration) ([]Scene, Transition, error) {
	if len(order) < 2 {
		return nil, Transition{}, fmt.Errorf("need at least 2 scenes to build a transition, got %d", len(order))
	}

	if len(order)%2 == 0 {
		last := order[len(order)-1]
		return order[:len(order)-1], Transition{
			Kind:      SplitMidpoint,
			Grayscale: last,
			Overlap:   overlap,
		}, nil
	}

	return order[:len(order)-2], Transition{
		Kind:      MergePair,
		Grayscale: order[len(order)-2],
		Color:     order[len(order)-1],
		Overlap:   overlap,
	}, nil
}
