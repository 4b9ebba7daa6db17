package ffmpeg

import "time"

// VideoInfo contains metadata about a video file
type VideoInfo struct {
	FilePath   string
	Duration   time.Duration
	Width      int
	Height     int
	FPS        float64
	Bitrate    int64
	VideoCodec string
	HasAudio   bool
	AudioCodec string
}

// Progress represents ffmpeg progress data
type Progress struct {
	Frame   int
	FPS     float64
	Bitrate string
	Time    string
	Speed   string
}

// ProgressFunc is a callback for progress updates during ffmpeg operations.
// Called periodically with progress information as the operation executes.
type ProgressFunc func(*Progress)

// RunOptions configures a single ffmpeg invocation
type RunOptions struct {
	Args            []string
	ProgressHandler ProgressFunc
	LogHandler      func(line string)
}

// Settings configures the executor
type Settings struct {
	BinaryPath string // ffmpeg binary, resolved via PATH when empty
	ProbePath  string // ffprobe binary, resolved via PATH when empty
	Threads    int
	Encode     EncodeSettings
}

// EncodeSettings holds the codec parameters used for every re-encode
type EncodeSettings struct {
	VideoCodec string
	AudioCodec string
	Preset     string
	CRF        int
}

// Default encoding settings
const (
	DefaultCRF        = 23
	DefaultPreset     = "medium"
	DefaultVideoCodec = "libx264"
	DefaultAudioCodec = "aac"
)

func (s EncodeSettings) withDefaults() EncodeSettings {
	if s.VideoCodec == "" {
		s.VideoCodec = DefaultVideoCodec
	}
	if s.AudioCodec == "" {
		s.AudioCodec = DefaultAudioCodec
	}
	if s.Preset == "" {
		s.Preset = DefaultPreset
	}
	if s.CRF == 0 {
		s.CRF = DefaultCRF
	}
	return s
}
