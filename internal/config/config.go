package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// TempDir is where per-run scratch directories are created.
	// Empty means the system temp directory.
	TempDir string `yaml:"temp_dir"`

	// FFmpeg settings
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`

	// Edit holds default mementoize parameters, overridable per run
	// by CLI flags.
	Edit EditConfig `yaml:"edit"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
	Threads    int    `yaml:"threads"`
	Preset     string `yaml:"preset"`
	CRF        int    `yaml:"crf"`
}

type EditConfig struct {
	Threshold      float64 `yaml:"threshold"`
	MinSceneLength float64 `yaml:"min_scene_length"` // seconds
	Overlap        float64 `yaml:"overlap"`          // seconds
	SpacerSeconds  float64 `yaml:"spacer_seconds"`
}

// SpacerDuration returns the spacer length as a duration.
func (e EditConfig) SpacerDuration() time.Duration {
	return time.Duration(e.SpacerSeconds * float64(time.Second))
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		TempDir: "",
		FFmpeg: FFmpegConfig{
			BinaryPath: "ffmpeg",
			ProbePath:  "ffprobe",
			Threads:    0,
			Preset:     "medium",
			CRF:        23,
		},
		Edit: EditConfig{
			Threshold:      0.7,
			MinSceneLength: 120,
			Overlap:        4,
			SpacerSeconds:  0.5,
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./mementoize.yaml",
		"./mementoize.yml",
		filepath.Join(os.Getenv("HOME"), ".mementoize", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
