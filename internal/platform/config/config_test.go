package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"watersim/internal/platform/config"
	apperrors "watersim/internal/platform/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watersim.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Experiment.ContainerCapacity != 500 || cfg.Experiment.CollectionTime != 180 || cfg.Experiment.TrialsPerCategory != 10 {
		t.Fatalf("unexpected experiment defaults: %+v", cfg.Experiment)
	}
	if cfg.Animation.Interval != 20*time.Millisecond || cfg.Export.Path != "water_collection_experiment_results.xlsx" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Animation, cfg.Export)
	}
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
experiment:
  container_capacity: 750
  mode: literal
  seed: 99
export:
  format: csv
animation:
  interval: 50ms
`)
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Experiment.ContainerCapacity != 750 || cfg.Experiment.Mode != "literal" {
		t.Fatalf("file values not applied: %+v", cfg.Experiment)
	}
	if cfg.Experiment.Seed == nil || *cfg.Experiment.Seed != 99 {
		t.Fatalf("expected seed 99, got %v", cfg.Experiment.Seed)
	}
	if cfg.Experiment.CollectionTime != 180 || cfg.Experiment.Low.Mean != 1.2 {
		t.Fatalf("defaults lost: %+v", cfg.Experiment)
	}
	if cfg.Export.Format != "csv" || cfg.Animation.Interval != 50*time.Millisecond {
		t.Fatalf("unexpected export/animation: %+v %+v", cfg.Export, cfg.Animation)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadFromFileRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "experiment:\n  capacity: 500\n")
	if _, err := config.LoadFromFile(path); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFromFileEmptyKeepsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if cfg.Experiment.ContainerCapacity != 500 {
		t.Fatalf("expected defaults, got %+v", cfg.Experiment)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()
	if _, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()
	mutations := map[string]func(*config.Config){
		"capacity":  func(c *config.Config) { c.Experiment.ContainerCapacity = 0 },
		"time":      func(c *config.Config) { c.Experiment.CollectionTime = -5 },
		"trials":    func(c *config.Config) { c.Experiment.TrialsPerCategory = 0 },
		"mode":      func(c *config.Config) { c.Experiment.Mode = "replay" },
		"nan mean":  func(c *config.Config) { c.Experiment.Medium.Mean = math.NaN() },
		"inf cap":   func(c *config.Config) { c.Experiment.ContainerCapacity = math.Inf(1) },
		"nan rate":  func(c *config.Config) { c.Animation.FlowRate = math.NaN() },
		"neg rate":  func(c *config.Config) { c.Animation.LiteralFlowRate = -1 },
		"basis":     func(c *config.Config) { c.Experiment.VolumeBasis = "exact" },
		"format":    func(c *config.Config) { c.Export.Format = "ods" },
		"plot size": func(c *config.Config) { c.Plot.Width = 0 },
		"animation": func(c *config.Config) { c.Animation.FrameStep = 0 },
		"log level": func(c *config.Config) { c.Logging.Level = "trace" },
	}
	for name, mutate := range mutations {
		cfg := config.Default()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadAppliesEnvOverride(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestNaNSpreadInFileFailsValidation(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromFile(writeConfig(t, "experiment:\n  low:\n    mean: 1.2\n    spread: .nan\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !math.IsNaN(cfg.Experiment.Low.Spread) {
		t.Fatalf("expected NaN spread to decode, got %v", cfg.Experiment.Low.Spread)
	}
	if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFlowRateForMode(t *testing.T) {
	t.Parallel()
	a := config.Default().Animation
	if a.FlowRateFor("generated") != 2.0 || a.FlowRateFor("literal") != 2.5 {
		t.Fatalf("unexpected flow rates %v %v", a.FlowRateFor("generated"), a.FlowRateFor("literal"))
	}
}
