// Package config loads and validates the render driver's configuration from
// YAML, with defaulting for fields left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProgressDisplay selects how render progress is surfaced.
type ProgressDisplay string

const (
	ProgressNone    ProgressDisplay = "none"
	ProgressTextBar ProgressDisplay = "text_bar"
	ProgressPreview ProgressDisplay = "live_preview"
)

// PreviewConfig controls how often the live-preview progress display
// refreshes.
type PreviewConfig struct {
	RefreshIntervalRows int `yaml:"refresh_interval_rows"`
}

// PostProcessConfig controls the optional post-render upscale pass.
type PostProcessConfig struct {
	Enabled     bool `yaml:"enabled"`
	ScaleFactor int  `yaml:"scale_factor"`
}

// RenderConfig is the full set of fields the render driver recognizes.
type RenderConfig struct {
	Width             int               `yaml:"width"`
	Height            int               `yaml:"height"`
	SamplesPerPixel   int               `yaml:"samples_per_pixel"`
	MaxDepth          int               `yaml:"max_depth"`
	SkyboxPath        string            `yaml:"skybox_path"`
	ProgressDisplay   ProgressDisplay   `yaml:"progress_display"`
	Preview           PreviewConfig     `yaml:"preview"`
	PostProcess       PostProcessConfig `yaml:"post_process"`
	Parallel          bool              `yaml:"parallel"`
}

// Default returns a RenderConfig with sensible defaults for every field.
func Default() RenderConfig {
	return RenderConfig{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 4,
		MaxDepth:        5,
		ProgressDisplay: ProgressTextBar,
		Preview:         PreviewConfig{RefreshIntervalRows: 16},
		PostProcess:     PostProcessConfig{Enabled: false, ScaleFactor: 1},
		Parallel:        true,
	}
}

// Load reads and parses a YAML configuration file, merging any present
// fields over the defaults.
func Load(path string) (RenderConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the invariants the render driver requires before starting.
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.PostProcess.Enabled && c.PostProcess.ScaleFactor <= 0 {
		return fmt.Errorf("post_process.scale_factor must be positive when enabled, got %d", c.PostProcess.ScaleFactor)
	}
	return nil
}
