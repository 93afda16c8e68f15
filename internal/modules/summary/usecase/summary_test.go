package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"watersim/internal/modules/summary/service"
	"watersim/internal/modules/summary/usecase"
	trialdto "watersim/internal/modules/trial/dto"
	apperrors "watersim/internal/platform/errors"
	"watersim/internal/platform/logging"
)

func run(trials ...trialdto.TrialOutput) trialdto.RunOutput {
	return trialdto.RunOutput{RunID: "run-9", Seed: 42, ContainerCapacity: 500, CollectionTime: 180, Trials: trials}
}

func TestSummarizeMapsStatsAndRows(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSummaryService(logging.Discard()))
	out, err := uc.Summarize(context.Background(), run(
		trialdto.TrialOutput{ID: 1, FlowType: "Low", Collected: 200},
		trialdto.TrialOutput{ID: 2, FlowType: "Low", Collected: 240},
		trialdto.TrialOutput{ID: 3, FlowType: "Medium", Collected: 360},
	))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if out.RunID != "run-9" || len(out.Stats) != 2 {
		t.Fatalf("unexpected summary: %+v", out)
	}
	low := out.Stats[0]
	if low.FlowType != "Low" || low.Median != 220 || len(low.Row) != len(out.Columns) {
		t.Fatalf("unexpected Low stats: %+v", low)
	}
	if low.Row[len(low.Row)-1] != "-" {
		t.Fatalf("expected no outliers marker, got %q", low.Row[len(low.Row)-1])
	}
}

func TestReportIncludesRunMetadata(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSummaryService(logging.Discard()))
	out, err := uc.Report(context.Background(), run(trialdto.TrialOutput{ID: 1, FlowType: "High", Collected: 500}))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out.Markdown, "run_id: run-9") || !strings.Contains(out.Markdown, "trials: 1") {
		t.Fatalf("unexpected report:\n%s", out.Markdown)
	}
}

func TestSummarizeRejectsUnknownFlowType(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSummaryService(logging.Discard()))
	_, err := uc.Summarize(context.Background(), run(trialdto.TrialOutput{ID: 1, FlowType: "Drip"}))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
