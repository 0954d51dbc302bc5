// Package config handles loading, saving and validating the tunable
// settings of the translation pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds every tunable of the translation pipeline. Components
// receive a copy at construction and never read ambient state, so
// independent pipelines can run side by side.
type Settings struct {
	// Temporal aggregation
	WindowSize           int     `yaml:"window_size"`           // sliding window capacity, frames
	ConsistencyThreshold float64 `yaml:"consistency_threshold"` // fraction of qualifying frames that must agree
	ConfidenceThreshold  float64 `yaml:"confidence_threshold"`  // frames below this are excluded from voting
	StabilityThreshold   int     `yaml:"stability_threshold"`   // consecutive winning frames before emission
	TransitionFrames     int     `yaml:"transition_frames"`     // grace frames while the stable label disagrees

	// Sentence construction
	WordTimeout     time.Duration `yaml:"word_timeout"`
	SentenceTimeout time.Duration `yaml:"sentence_timeout"`

	// History storage
	HistoryPath string `yaml:"history_path,omitempty"`

	// Custom vocabulary (optional)
	SignsPath string `yaml:"signs_path,omitempty"`

	// Websocket ingest server
	ServerAddr string `yaml:"server_addr,omitempty"`
}

// Default returns the documented default settings.
func Default() Settings {
	return Settings{
		WindowSize:           15,
		ConsistencyThreshold: 0.40,
		ConfidenceThreshold:  0.55,
		StabilityThreshold:   5,
		TransitionFrames:     3,
		WordTimeout:          1500 * time.Millisecond,
		SentenceTimeout:      3 * time.Second,
		ServerAddr:           ":8870",
	}
}

// Validate rejects settings the pipeline cannot run with. It is called
// by every component constructor so that bad configuration fails before
// the first frame is processed.
func (s Settings) Validate() error {
	if s.WindowSize <= 0 {
		return fmt.Errorf("window_size must be positive, got %d", s.WindowSize)
	}
	if s.ConsistencyThreshold <= 0 || s.ConsistencyThreshold > 1 {
		return fmt.Errorf("consistency_threshold must be in (0, 1], got %g", s.ConsistencyThreshold)
	}
	if s.ConfidenceThreshold < 0 || s.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in [0, 1], got %g", s.ConfidenceThreshold)
	}
	if s.StabilityThreshold < 1 {
		return fmt.Errorf("stability_threshold must be at least 1, got %d", s.StabilityThreshold)
	}
	if s.TransitionFrames < 0 {
		return fmt.Errorf("transition_frames must not be negative, got %d", s.TransitionFrames)
	}
	if s.WordTimeout <= 0 {
		return fmt.Errorf("word_timeout must be positive, got %s", s.WordTimeout)
	}
	if s.SentenceTimeout < s.WordTimeout {
		return fmt.Errorf("sentence_timeout %s must not be shorter than word_timeout %s",
			s.SentenceTimeout, s.WordTimeout)
	}
	return nil
}

// Load reads settings from a YAML file, filling unset fields with
// defaults and validating the result.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes settings to a YAML file.
func Save(path string, s Settings) error {
	out, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Dir returns the default configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "signlang"), nil
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
