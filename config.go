package fasterwhisper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the transcription parameters handed to the inference script.
// Optional fields are pointers; nil means "let the model decide" and crosses
// the script boundary as the sentinel string (see sentinel.go). A Config is
// never mutated after construction.
type Config struct {
	StartingPrompt *string   `yaml:"starting_prompt"`
	Prefix         *string   `yaml:"prefix"`
	Language       *string   `yaml:"language"`
	BeamSize       int       `yaml:"beam_size"`
	BestOf         int       `yaml:"best_of"`
	Patience       float64   `yaml:"patience"`
	LengthPenalty  float64   `yaml:"length_penalty"`
	ChunkLength    *int      `yaml:"chunk_length"`
	VAD            VADConfig `yaml:"vad"`
}

// VADConfig holds voice-activity-detection settings. Durations are in
// milliseconds except MaxSpeechDuration, which is in seconds.
type VADConfig struct {
	Active             bool    `yaml:"active"`
	Threshold          float64 `yaml:"threshold"`
	MinSpeechDuration  int     `yaml:"min_speech_duration"`
	MaxSpeechDuration  *int    `yaml:"max_speech_duration"`
	MinSilenceDuration int     `yaml:"min_silence_duration"`
	PaddingDuration    int     `yaml:"padding_duration"`
}

// DefaultConfig returns a Config matching the model library's own defaults:
// beam size 5, best-of 5, no optional overrides, VAD disabled.
func DefaultConfig() Config {
	return Config{
		BeamSize:      5,
		BestOf:        5,
		Patience:      1.0,
		LengthPenalty: 1.0,
		VAD: VADConfig{
			Active:             false,
			Threshold:          0.5,
			MinSpeechDuration:  250,
			MinSilenceDuration: 2000,
			PaddingDuration:    400,
		},
	}
}

// LoadConfig reads and parses a YAML config file. Missing fields are filled
// with defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fasterwhisper: reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fasterwhisper: parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for values the inference script would reject.
func (c Config) Validate() error {
	if c.BeamSize <= 0 {
		return fmt.Errorf("beam_size must be > 0, got %d", c.BeamSize)
	}
	if c.BestOf <= 0 {
		return fmt.Errorf("best_of must be > 0, got %d", c.BestOf)
	}
	if c.Patience <= 0 {
		return fmt.Errorf("patience must be > 0, got %v", c.Patience)
	}
	if c.ChunkLength != nil && *c.ChunkLength <= 0 {
		return fmt.Errorf("chunk_length must be > 0, got %d", *c.ChunkLength)
	}
	if c.VAD.Threshold < 0 || c.VAD.Threshold > 1 {
		return fmt.Errorf("vad.threshold must be within [0, 1], got %v", c.VAD.Threshold)
	}
	if c.VAD.MinSpeechDuration < 0 {
		return fmt.Errorf("vad.min_speech_duration must be >= 0, got %d", c.VAD.MinSpeechDuration)
	}
	if c.VAD.MinSilenceDuration < 0 {
		return fmt.Errorf("vad.min_silence_duration must be >= 0, got %d", c.VAD.MinSilenceDuration)
	}
	if c.VAD.PaddingDuration < 0 {
		return fmt.Errorf("vad.padding_duration must be >= 0, got %d", c.VAD.PaddingDuration)
	}
	return nil
}

// String returns a pointer to v, for filling optional Config fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for filling optional Config fields.
func Int(v int) *int { return &v }
