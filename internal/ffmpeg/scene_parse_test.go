package ffmpeg

import (
	"testing"
	"time"
)

func TestParseSceneTimestamps(t *testing.T) {
	output := `[Parsed_showinfo_1 @ 0x7f8] n:   0 pts:  312500 pts_time:12.500000 duration_time:0.040000
[Parsed_showinfo_1 @ 0x7f8] n:   1 pts:  750000 pts_time:30.0 duration_time:0.040000`

	got := ParseSceneTimestamps(output)

	want := []time.Duration{
		time.Duration(12.5 * float64(time.Second)),
		30 * time.Second,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d timestamps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timestamp %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseSceneTimestampsNoMarkers(t *testing.T) {
	if got := ParseSceneTimestamps("frame=  100 fps=25 q=-0.0"); len(got) != 0 {
		t.Errorf("expected no timestamps, got %v", got)
	}
}

func TestParseSceneTimestampsOrderPreserved(t *testing.T) {
	output := "pts_time:5.0 junk pts_time:2.5 junk pts_time:7.25"
	got := ParseSceneTimestamps(output)

	want := []time.Duration{
		5 * time.Second,
		2500 * time.Millisecond,
		7250 * time.Millisecond,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d timestamps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timestamp %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
