package domain

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	apperrors "watersim/internal/platform/errors"
)

// Categories is the fixed report order.
var Categories = []string{"Low", "Medium", "High"}

// WhiskerFactor scales the interquartile range to place box-plot fences.
const WhiskerFactor = 1.5

type Observation struct {
	Category string
	Value    float64
}

type CategoryStats struct {
	Category     string
	Count        int
	Min          float64
	Q1           float64
	Median       float64
	Q3           float64
	Max          float64
	Mean         float64
	StdDev       float64
	LowerWhisker float64
	UpperWhisker float64
	Outliers     []float64
}

// Group partitions observations by category and describes each non-empty
// group in Categories order.
func Group(observations []Observation) ([]CategoryStats, error) {
	byCategory := make(map[string][]float64, len(Categories))
	for _, o := range observations {
		if !slices.Contains(Categories, o.Category) {
			return nil, fmt.Errorf("%w: unknown flow category %q", apperrors.ErrInvalidInput, o.Category)
		}
		byCategory[o.Category] = append(byCategory[o.Category], o.Value)
	}
	out := make([]CategoryStats, 0, len(Categories))
	for _, category := range Categories {
		values := byCategory[category]
		if len(values) == 0 {
			continue
		}
		out = append(out, Describe(category, values))
	}
	return out, nil
}

// Describe computes summary statistics for a non-empty sample. Quartiles
// interpolate linearly between order statistics at rank p*(n-1).
func Describe(category string, values []float64) CategoryStats {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := CategoryStats{
		Category: category,
		Count:    len(sorted),
		Min:      floats.Min(sorted),
		Max:      floats.Max(sorted),
		Q1:       Quantile(0.25, sorted),
		Median:   Quantile(0.5, sorted),
		Q3:       Quantile(0.75, sorted),
		Mean:     stat.Mean(sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}

	iqr := s.Q3 - s.Q1
	lowFence := s.Q1 - WhiskerFactor*iqr
	highFence := s.Q3 + WhiskerFactor*iqr
	s.LowerWhisker, s.UpperWhisker = s.Q1, s.Q3
	for _, v := range sorted {
		if v >= lowFence {
			s.LowerWhisker = math.Min(v, s.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highFence {
			s.UpperWhisker = math.Max(sorted[i], s.Q3)
			break
		}
	}
	for _, v := range sorted {
		if v < s.LowerWhisker || v > s.UpperWhisker {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s
}

// Quantile returns the p-quantile of sorted data using linear interpolation
// between the two nearest ranks.
func Quantile(p float64, sorted []float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
