package memento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sceneSeq builds n scenes whose Start values identify them: scene i
// starts at i seconds.
func sceneSeq(n int) []Scene {
	scenes := make([]Scene, 0, n)
	for i := 0; i < n; i++ {
		scenes = append(scenes, Scene{
			Start: time.Duration(i) * time.Second,
			End:   time.Duration(i+1) * time.Second,
		})
	}
	return scenes
}

func starts(scenes []Scene) []time.Duration {
	out := make([]time.Duration, 0, len(scenes))
	for _, s := range scenes {
		out = append(out, s.Start)
	}
	return out
}

func TestInterleaveEvenCount(t *testing.T) {
	// [A,B,C,D,E,F] -> [F,A,E,B,D,C]
	got := Interleave(sceneSeq(6))

	assert.Equal(t, secs(5, 0, 4, 1, 3, 2), starts(got))
}

func TestInterleaveOddCount(t *testing.T) {
	// [A,B,C,D,E] -> [E,A,D,B,C]
	got := Interleave(sceneSeq(5))

	assert.Equal(t, secs(4, 0, 3, 1, 2), starts(got))
}

func TestInterleaveIsPermutation(t *testing.T) {
	for n := 2; n <= 12; n++ {
		in := sceneSeq(n)
		got := Interleave(in)
		require.Len(t, got, n, "n=%d", n)

		seen := make(map[time.Duration]bool, n)
		for _, s := range got {
			seen[s.Start] = true
		}
		assert.Len(t, seen, n, "n=%d output must be a permutation", n)
	}
}

func TestInterleaveGrayscaleMarking(t *testing.T) {
	got := Interleave(sceneSeq(6))

	// Odd positions excluding the final two; the opener and the
	// transition scenes stay untouched.
	for i, s := range got {
		want := i%2 == 1 && i < len(got)-2
		assert.Equal(t, want, s.Grayscale, "position %d", i)
	}
}

func TestInterleaveDoesNotMutateInput(t *testing.T) {
	in := sceneSeq(7)
	Interleave(in)

	for i, s := range in {
		assert.False(t, s.Grayscale, "input scene %d was mutated", i)
	}
}
