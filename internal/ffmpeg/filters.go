package ffmpeg

import (
	"fmt"
	"strings"
	"time"
)

// FilterBuilder helps construct ffmpeg video filter chains
type FilterBuilder struct {
	filters []string
}

// NewFilterBuilder creates a new filter builder
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		filters: make([]string, 0),
	}
}

// Grayscale desaturates the video
func (fb *FilterBuilder) Grayscale() *FilterBuilder {
	fb.filters = append(fb.filters, "hue=s=0")
	return fb
}

// FadeIn fades from black at the start of the clip
func (fb *FilterBuilder) FadeIn(d time.Duration) *FilterBuilder {
	if d <= 0 {
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("fade=t=in:st=0:d=%.3f", d.Seconds()))
	return fb
}

// FadeOut fades to black starting at the given offset
func (fb *FilterBuilder) FadeOut(start, d time.Duration) *FilterBuilder {
	if d <= 0 {
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("fade=t=out:st=%.3f:d=%.3f", start.Seconds(), d.Seconds()))
	return fb
}

// Scale adds a scale filter
func (fb *FilterBuilder) Scale(width, height int) *FilterBuilder {
	if width <= 0 || height <= 0 {
		return fb
	}
	fb.filters = append(fb.filters, fmt.Sprintf("scale=%d:%d", width, height))
	return fb
}

// Custom adds a custom filter string
func (fb *FilterBuilder) Custom(filter string) *FilterBuilder {
	fb.filters = append(fb.filters, filter)
	return fb
}

// Build returns the complete filter string joined with commas
func (fb *FilterBuilder) Build() string {
	if len(fb.filters) == 0 {
		return ""
	}
	return strings.Join(fb.filters, ",")
}
