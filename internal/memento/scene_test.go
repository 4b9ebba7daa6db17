package memento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitScenesOverlap(t *testing.T) {
	cuts := secs(0, 130, 260)
	total := 400 * time.Second
	overlap := 4 * time.Second

	scenes := SplitScenes(cuts, total, overlap)
	require.Len(t, scenes, len(cuts))

	assert.Equal(t, Scene{Start: 0, End: 134 * time.Second}, scenes[0])
	assert.Equal(t, Scene{Start: 130 * time.Second, End: 264 * time.Second}, scenes[1])
	// Last scene runs to the end of the source, no overlap.
	assert.Equal(t, Scene{Start: 260 * time.Second, End: total}, scenes[2])
}

func TestSplitScenesClampsToSource(t *testing.T) {
	cuts := secs(0, 95)
	total := 97 * time.Second

	scenes := SplitScenes(cuts, total, 4*time.Second)
	require.Len(t, scenes, 2)
	assert.Equal(t, total, scenes[0].End, "overlap past the end is clamped")
}

func TestSplitScenesSingleCut(t *testing.T) {
	scenes := SplitScenes(secs(0), 60*time.Second, 4*time.Second)
	require.Len(t, scenes, 1)
	assert.Equal(t, Scene{Start: 0, End: 60 * time.Second}, scenes[0])
}

func TestSplitScenesEmpty(t *testing.T) {
	assert.Empty(t, SplitScenes(nil, time.Minute, time.Second))
}

func TestSceneDuration(t *testing.T) {
	s := Scene{Start: 10 * time.Second, End: 25 * time.Second}
	assert.Equal(t, 15*time.Second, s.Duration())
}
