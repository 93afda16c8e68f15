// Package config loads watersim settings from defaults, an optional YAML
// file and environment overrides. Command-line flags are applied on top by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "watersim/internal/platform/errors"
	"watersim/internal/platform/logging"
)

// EnvLogLevel overrides logging.level when set.
const EnvLogLevel = "WATERSIM_LOG_LEVEL"

type Config struct {
	Experiment ExperimentConfig `yaml:"experiment"`
	Export     ExportConfig     `yaml:"export"`
	Plot       PlotConfig       `yaml:"plot"`
	Animation  AnimationConfig  `yaml:"animation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type Distribution struct {
	Mean   float64 `yaml:"mean"`
	Spread float64 `yaml:"spread"`
}

type ExperimentConfig struct {
	ContainerCapacity float64      `yaml:"container_capacity"`
	CollectionTime    float64      `yaml:"collection_time"`
	TrialsPerCategory int          `yaml:"trials_per_category"`
	Low               Distribution `yaml:"low"`
	Medium            Distribution `yaml:"medium"`
	HighSpread        float64      `yaml:"high_spread"`
	// Mode is "generated" or "literal".
	Mode string `yaml:"mode"`
	// VolumeBasis is "rounded" or "raw".
	VolumeBasis      string    `yaml:"volume_basis"`
	LiteralCollected []float64 `yaml:"literal_collected,omitempty"`
	// Seed pins the sampler; nil derives one per run.
	Seed *uint64 `yaml:"seed,omitempty"`
}

type ExportConfig struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format,omitempty"`
	Timestamp bool   `yaml:"timestamp"`
}

type PlotConfig struct {
	Path   string  `yaml:"path"`
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationConfig struct {
	FlowRate float64 `yaml:"flow_rate"`
	// LiteralFlowRate replaces FlowRate when experiment.mode is literal.
	LiteralFlowRate float64       `yaml:"literal_flow_rate"`
	FrameStep       float64       `yaml:"frame_step"`
	Interval        time.Duration `yaml:"interval"`
}

// FlowRateFor returns the accumulation rate shown for mode.
func (a AnimationConfig) FlowRateFor(mode string) float64 {
	if mode == "literal" {
		return a.LiteralFlowRate
	}
	return a.FlowRate
}

type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Experiment: ExperimentConfig{
			ContainerCapacity: 500,
			CollectionTime:    180,
			TrialsPerCategory: 10,
			Low:               Distribution{Mean: 1.2, Spread: 0.2},
			Medium:            Distribution{Mean: 2.0, Spread: 0.3},
			HighSpread:        0.4,
			Mode:              "generated",
			VolumeBasis:       "rounded",
		},
		Export: ExportConfig{Path: "water_collection_experiment_results.xlsx"},
		Plot: PlotConfig{
			Path:   "water_collection_experiment.png",
			Title:  "Water Collection Experiment",
			Width:  10,
			Height: 8,
		},
		Animation: AnimationConfig{FlowRate: 2.0, LiteralFlowRate: 2.5, FrameStep: 0.5, Interval: 20 * time.Millisecond},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the file at path (when non-empty) and
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyEnvOverrides(cfg, os.LookupEnv)
	return cfg, nil
}

// LoadFromFile overlays the YAML file at path on the defaults. Unknown keys
// are rejected.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing config file %s: %w", apperrors.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	e := c.Experiment
	if !positive(e.ContainerCapacity) {
		return fmt.Errorf("%w: container_capacity must be positive and finite, got %v", apperrors.ErrInvalidConfig, e.ContainerCapacity)
	}
	if !positive(e.CollectionTime) {
		return fmt.Errorf("%w: collection_time must be positive and finite, got %v", apperrors.ErrInvalidConfig, e.CollectionTime)
	}
	if e.TrialsPerCategory < 1 {
		return fmt.Errorf("%w: trials_per_category must be at least 1, got %d", apperrors.ErrInvalidConfig, e.TrialsPerCategory)
	}
	for name, d := range map[string]Distribution{"low": e.Low, "medium": e.Medium} {
		if math.IsNaN(d.Mean) || math.IsInf(d.Mean, 0) {
			return fmt.Errorf("%w: %s.mean must be finite, got %v", apperrors.ErrInvalidConfig, name, d.Mean)
		}
		if !nonNegative(d.Spread) {
			return fmt.Errorf("%w: %s.spread must be non-negative and finite, got %v", apperrors.ErrInvalidConfig, name, d.Spread)
		}
	}
	if !nonNegative(e.HighSpread) {
		return fmt.Errorf("%w: high_spread must be non-negative and finite, got %v", apperrors.ErrInvalidConfig, e.HighSpread)
	}
	validModes := map[string]bool{"generated": true, "literal": true}
	if !validModes[e.Mode] {
		return fmt.Errorf("%w: invalid mode: %s (valid: generated, literal)", apperrors.ErrInvalidConfig, e.Mode)
	}
	validBases := map[string]bool{"rounded": true, "raw": true}
	if !validBases[e.VolumeBasis] {
		return fmt.Errorf("%w: invalid volume_basis: %s (valid: rounded, raw)", apperrors.ErrInvalidConfig, e.VolumeBasis)
	}
	validFormats := map[string]bool{"": true, "xlsx": true, "csv": true, "sqlite": true}
	if !validFormats[c.Export.Format] {
		return fmt.Errorf("%w: invalid export format: %s (valid: xlsx, csv, sqlite, or empty to use the extension)", apperrors.ErrInvalidConfig, c.Export.Format)
	}
	if !positive(c.Plot.Width) || !positive(c.Plot.Height) {
		return fmt.Errorf("%w: plot size must be positive, got %vx%v", apperrors.ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if !positive(c.Animation.FrameStep) || c.Animation.Interval <= 0 || !nonNegative(c.Animation.FlowRate) || !nonNegative(c.Animation.LiteralFlowRate) {
		return fmt.Errorf("%w: animation needs positive frame_step and interval and non-negative flow rates", apperrors.ErrInvalidConfig)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s (valid: debug, info, warn, error)", apperrors.ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
}
