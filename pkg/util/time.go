package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration converts time.Duration to ffmpeg timestamp format
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}

// ParseSeconds parses a decimal seconds value into a duration
func ParseSeconds(s string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp: %s", s)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// ParseCutList parses a comma-separated list of cut timestamps, each a
// decimal seconds value.
func ParseCutList(s string) ([]time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	cuts := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		cut, err := ParseSeconds(part)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, cut)
	}
	return cuts, nil
}

// FormatCutList renders cut timestamps as decimal seconds for display
func FormatCutList(cuts []time.Duration) string {
	parts := make([]string, 0, len(cuts))
	for _, cut := range cuts {
		parts = append(parts, strconv.FormatFloat(cut.Seconds(), 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}

// ParseFrameRate parses frame rate from ffprobe format (e.g., "30/1")
func ParseFrameRate(s string) float64 {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}
