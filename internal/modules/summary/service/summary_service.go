package service

import (
	"context"
	"log/slog"

	"watersim/internal/modules/summary/domain"
)

type SummaryService struct {
	logger *slog.Logger
}

func NewSummaryService(logger *slog.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

func (s *SummaryService) Summarize(_ context.Context, runID string, observations []domain.Observation) ([]domain.CategoryStats, error) {
	stats, err := domain.Group(observations)
	if err != nil {
		return nil, err
	}
	outliers := 0
	for _, st := range stats {
		outliers += len(st.Outliers)
	}
	s.logger.Debug("summarized trials", "run_id", runID, "categories", len(stats), "outliers", outliers)
	return stats, nil
}

func (s *SummaryService) Report(ctx context.Context, meta domain.ReportMeta, observations []domain.Observation) (string, error) {
	stats, err := s.Summarize(ctx, meta.RunID, observations)
	if err != nil {
		return "", err
	}
	return domain.Report(meta, stats)
}
