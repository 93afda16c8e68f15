package domain_test

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"watersim/internal/modules/summary/domain"
	apperrors "watersim/internal/platform/errors"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDescribeOddSampleWithOutlier(t *testing.T) {
	t.Parallel()
	s := domain.Describe("High", []float64{100, 30, 10, 40, 20})
	if s.Count != 5 || s.Min != 10 || s.Max != 100 {
		t.Fatalf("unexpected count/min/max: %+v", s)
	}
	if !near(s.Q1, 20) || !near(s.Median, 30) || !near(s.Q3, 40) || !near(s.Mean, 40) {
		t.Fatalf("unexpected quartiles or mean: %+v", s)
	}
	if !near(s.StdDev, math.Sqrt(1250)) {
		t.Fatalf("unexpected std %v", s.StdDev)
	}
	if s.LowerWhisker != 10 || s.UpperWhisker != 40 {
		t.Fatalf("unexpected whiskers %v..%v", s.LowerWhisker, s.UpperWhisker)
	}
	if !slices.Equal(s.Outliers, []float64{100}) {
		t.Fatalf("expected 100 as only outlier, got %v", s.Outliers)
	}
}

func TestDescribeEvenSampleInterpolates(t *testing.T) {
	t.Parallel()
	s := domain.Describe("Low", []float64{40, 10, 30, 20})
	if !near(s.Q1, 17.5) || !near(s.Median, 25) || !near(s.Q3, 32.5) {
		t.Fatalf("unexpected quartiles: %+v", s)
	}
	if len(s.Outliers) != 0 || s.LowerWhisker != 10 || s.UpperWhisker != 40 {
		t.Fatalf("expected whiskers at data range without outliers: %+v", s)
	}
}

func TestDescribeSingleValue(t *testing.T) {
	t.Parallel()
	s := domain.Describe("Medium", []float64{500})
	if s.Min != 500 || s.Median != 500 || s.Max != 500 || s.StdDev != 0 {
		t.Fatalf("unexpected single-value stats: %+v", s)
	}
	if s.LowerWhisker != 500 || s.UpperWhisker != 500 || len(s.Outliers) != 0 {
		t.Fatalf("unexpected whiskers: %+v", s)
	}
}

func TestGroupKeepsCategoryOrderAndOmitsEmpty(t *testing.T) {
	t.Parallel()
	stats, err := domain.Group([]domain.Observation{
		{Category: "High", Value: 500},
		{Category: "Low", Value: 220},
		{Category: "High", Value: 480},
		{Category: "Low", Value: 200},
	})
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if len(stats) != 2 || stats[0].Category != "Low" || stats[1].Category != "High" {
		t.Fatalf("unexpected grouping: %+v", stats)
	}
	if stats[0].Count != 2 || !near(stats[0].Mean, 210) {
		t.Fatalf("unexpected Low stats: %+v", stats[0])
	}
}

func TestGroupRejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	_, err := domain.Group([]domain.Observation{{Category: "Trickle", Value: 1}})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuantileEmpty(t *testing.T) {
	t.Parallel()
	if !math.IsNaN(domain.Quantile(0.5, nil)) {
		t.Fatalf("expected NaN for empty sample")
	}
}

func TestReportHasFrontmatterAndTable(t *testing.T) {
	t.Parallel()
	stats := []domain.CategoryStats{domain.Describe("Low", []float64{220, 200})}
	md, err := domain.Report(domain.ReportMeta{RunID: "r1", Seed: 7, ContainerCapacity: 500, CollectionTime: 180, Trials: 2}, stats)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{
		"---\nrun_id: r1\nseed: 7\ncontainer_capacity: 500\ncollection_time: 180\ntrials: 2\n---\n",
		"| Flow Type | Count | Mean |",
		"| Low | 2 | 210.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}
