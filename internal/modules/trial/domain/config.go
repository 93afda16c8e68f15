package domain

import (
	"fmt"
	"math"

	apperrors "watersim/internal/platform/errors"
)

type Mode string

const (
	ModeGenerated Mode = "generated"
	ModeLiteral   Mode = "literal"
)

// VolumeBasis selects which flow rate the collected volume derives from.
type VolumeBasis string

const (
	VolumeBasisRounded VolumeBasis = "rounded"
	VolumeBasisRaw     VolumeBasis = "raw"
)

const (
	DefaultContainerCapacity = 500.0
	DefaultCollectionTime    = 180.0
	DefaultTrialsPerCategory = 10

	// HighSafetyMargin keeps the High mean below the rate that would exactly
	// fill the container within the collection time.
	HighSafetyMargin = 0.8
)

type Distribution struct {
	Mean   float64
	Spread float64
}

type Config struct {
	ContainerCapacity float64
	CollectionTime    float64
	TrialsPerCategory int
	Low               Distribution
	Medium            Distribution
	HighSpread        float64
	Mode              Mode
	VolumeBasis       VolumeBasis
	LiteralCollected  []float64
}

func DefaultConfig() Config {
	return Config{
		ContainerCapacity: DefaultContainerCapacity,
		CollectionTime:    DefaultCollectionTime,
		TrialsPerCategory: DefaultTrialsPerCategory,
		Low:               Distribution{Mean: 1.2, Spread: 0.2},
		Medium:            Distribution{Mean: 2.0, Spread: 0.3},
		HighSpread:        0.4,
		Mode:              ModeGenerated,
		VolumeBasis:       VolumeBasisRounded,
		LiteralCollected:  DefaultLiteralCollected(),
	}
}

// DefaultLiteralCollected returns the hand-recorded volumes of the reference
// experiment, ten per category in Low, Medium, High order.
func DefaultLiteralCollected() []float64 {
	return []float64{
		230, 200, 220, 230, 250, 180, 220, 290, 210, 220,
		400, 330, 480, 260, 420, 340, 340, 390, 330, 260,
		370, 250, 290, 470, 300, 410, 400, 330, 240, 420,
	}
}

func (c Config) TotalTrials() int {
	return c.TrialsPerCategory * len(Categories)
}

// HighMean is derived from the physical bounds rather than configured.
func (c Config) HighMean() float64 {
	return (c.ContainerCapacity / c.CollectionTime) * HighSafetyMargin
}

func (c Config) Distribution(category Category) Distribution {
	switch category {
	case CategoryLow:
		return c.Low
	case CategoryMedium:
		return c.Medium
	default:
		return Distribution{Mean: c.HighMean(), Spread: c.HighSpread}
	}
}

func (c Config) Validate() error {
	if !(c.ContainerCapacity > 0) || math.IsInf(c.ContainerCapacity, 1) {
		return fmt.Errorf("%w: container capacity must be positive and finite, got %v", apperrors.ErrInvalidConfig, c.ContainerCapacity)
	}
	if !(c.CollectionTime > 0) || math.IsInf(c.CollectionTime, 1) {
		return fmt.Errorf("%w: collection time must be positive and finite, got %v", apperrors.ErrInvalidConfig, c.CollectionTime)
	}
	if c.TrialsPerCategory < 1 {
		return fmt.Errorf("%w: trials per category must be at least 1, got %d", apperrors.ErrInvalidConfig, c.TrialsPerCategory)
	}
	for _, v := range []float64{c.Low.Mean, c.Medium.Mean} {
		if !finite(v) {
			return fmt.Errorf("%w: flow rate mean must be finite, got %v", apperrors.ErrInvalidConfig, v)
		}
	}
	for _, v := range []float64{c.Low.Spread, c.Medium.Spread, c.HighSpread} {
		if !(v >= 0) || math.IsInf(v, 1) {
			return fmt.Errorf("%w: flow rate spread must be non-negative and finite, got %v", apperrors.ErrInvalidConfig, v)
		}
	}
	switch c.VolumeBasis {
	case VolumeBasisRounded, VolumeBasisRaw:
	default:
		return fmt.Errorf("%w: unsupported volume basis %q", apperrors.ErrInvalidConfig, string(c.VolumeBasis))
	}
	switch c.Mode {
	case ModeGenerated:
	case ModeLiteral:
		if len(c.LiteralCollected) != c.TotalTrials() {
			return fmt.Errorf("%w: literal mode needs %d collected volumes, got %d", apperrors.ErrInvalidConfig, c.TotalTrials(), len(c.LiteralCollected))
		}
		for i, v := range c.LiteralCollected {
			if !finite(v) {
				return fmt.Errorf("%w: literal volume %d must be finite, got %v", apperrors.ErrInvalidConfig, i+1, v)
			}
		}
	default:
		return fmt.Errorf("%w: unsupported mode %q", apperrors.ErrInvalidConfig, string(c.Mode))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
