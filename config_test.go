package fasterwhisper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BeamSize != 5 {
		t.Errorf("BeamSize = %d, want 5", cfg.BeamSize)
	}
	if cfg.BestOf != 5 {
		t.Errorf("BestOf = %d, want 5", cfg.BestOf)
	}
	if cfg.Patience != 1.0 {
		t.Errorf("Patience = %v, want 1.0", cfg.Patience)
	}
	if cfg.LengthPenalty != 1.0 {
		t.Errorf("LengthPenalty = %v, want 1.0", cfg.LengthPenalty)
	}
	if cfg.StartingPrompt != nil || cfg.Prefix != nil || cfg.Language != nil || cfg.ChunkLength != nil {
		t.Error("optional fields should be absent by default")
	}
	if cfg.VAD.Active {
		t.Error("VAD.Active should be false by default")
	}
	if cfg.VAD.Threshold != 0.5 {
		t.Errorf("VAD.Threshold = %v, want 0.5", cfg.VAD.Threshold)
	}
	if cfg.VAD.MaxSpeechDuration != nil {
		t.Error("VAD.MaxSpeechDuration should be absent by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	yamlContent := `
language: en
beam_size: 3
chunk_length: 20
vad:
  active: true
  threshold: 0.6
  max_speech_duration: 30
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Language == nil || *cfg.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.Language)
	}
	if cfg.BeamSize != 3 {
		t.Errorf("BeamSize = %d, want 3", cfg.BeamSize)
	}
	if cfg.ChunkLength == nil || *cfg.ChunkLength != 20 {
		t.Errorf("ChunkLength = %v, want 20", cfg.ChunkLength)
	}
	if cfg.BestOf != 5 {
		t.Errorf("BestOf = %d, want default 5", cfg.BestOf)
	}
	if !cfg.VAD.Active {
		t.Error("VAD.Active = false, want true")
	}
	if cfg.VAD.Threshold != 0.6 {
		t.Errorf("VAD.Threshold = %v, want 0.6", cfg.VAD.Threshold)
	}
	if cfg.VAD.MaxSpeechDuration == nil || *cfg.VAD.MaxSpeechDuration != 30 {
		t.Errorf("VAD.MaxSpeechDuration = %v, want 30", cfg.VAD.MaxSpeechDuration)
	}
	if cfg.VAD.MinSilenceDuration != 2000 {
		t.Errorf("VAD.MinSilenceDuration = %d, want default 2000", cfg.VAD.MinSilenceDuration)
	}
}

func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadConfig() should return error for nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero beam size", func(c *Config) { c.BeamSize = 0 }, true},
		{"negative best of", func(c *Config) { c.BestOf = -1 }, true},
		{"zero patience", func(c *Config) { c.Patience = 0 }, true},
		{"zero chunk length", func(c *Config) { c.ChunkLength = Int(0) }, true},
		{"threshold above one", func(c *Config) { c.VAD.Threshold = 1.5 }, true},
		{"negative min speech", func(c *Config) { c.VAD.MinSpeechDuration = -1 }, true},
		{"negative min silence", func(c *Config) { c.VAD.MinSilenceDuration = -1 }, true},
		{"negative padding", func(c *Config) { c.VAD.PaddingDuration = -1 }, true},
		{"all optionals set", func(c *Config) {
			c.StartingPrompt = String("hello")
			c.Prefix = String("hi")
			c.Language = String("en")
			c.ChunkLength = Int(20)
			c.VAD.MaxSpeechDuration = Int(30)
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
