// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of the command line tool, read from
// YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/ik5/ohrli/internal/logging"
	"github.com/ik5/ohrli/resample"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Resampler is "soxr" or "cubic".
	Resampler string `yaml:"resampler"`
	// Quality is the soxr preset: quick, low, medium, high or veryhigh.
	Quality  string `yaml:"quality"`
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
	// BufferSize is the decoder read size in samples.
	BufferSize int `yaml:"buffer_size"`
	// MaxSteps caps spectrogram length; 0 is unlimited.
	MaxSteps int `yaml:"max_steps"`
}

func Default() Config {
	return Config{
		Resampler:  resample.KindSoxr,
		Quality:    resample.DefaultQuality,
		LogLevel:   "warn",
		BufferSize: 4096,
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(resample.Kinds(), strings.ToLower(c.Resampler)) {
		return fmt.Errorf("%w: resampler %q, want one of %v", ErrInvalid, c.Resampler, resample.Kinds())
	}
	if !slices.Contains(resample.Qualities(), strings.ToLower(c.Quality)) {
		return fmt.Errorf("%w: quality %q, want one of %v", ErrInvalid, c.Quality, resample.Qualities())
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer_size %d is negative", ErrInvalid, c.BufferSize)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d is negative", ErrInvalid, c.MaxSteps)
	}

	return nil
}

// YAML renders the configuration in the same form Load reads.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return data, nil
}
