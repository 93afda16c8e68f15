package report_test

import (
	"strings"
	"testing"

	summarydto "watersim/internal/modules/summary/dto"
	trialdto "watersim/internal/modules/trial/dto"
	"watersim/internal/ui/report"
)

func TestTrialTableListsEveryTrial(t *testing.T) {
	t.Parallel()
	out := report.TrialTable(trialdto.RunOutput{
		Columns: []string{"Trial", "Flow Type", "Flow Rate (ml/s)", "Collected (ml)"},
		Trials: []trialdto.TrialOutput{
			{ID: 1, FlowType: "Low", FlowRate: 0, Collected: 220},
			{ID: 2, FlowType: "High", FlowRate: 20, Collected: 500},
		},
	})
	for _, want := range []string{"Experimental Results Table:", "Flow Rate (ml/s)", "Low", "220", "High", "500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestStatsTableUsesRows(t *testing.T) {
	t.Parallel()
	out := report.StatsTable(summarydto.SummaryOutput{
		Columns: []string{"Flow Type", "Count"},
		Stats:   []summarydto.StatsOutput{{FlowType: "Medium", Row: []string{"Medium", "10"}}},
	})
	if !strings.Contains(out, "Medium") || !strings.Contains(out, "Count") {
		t.Fatalf("unexpected stats table:\n%s", out)
	}
}

func TestPrettyRendersFrontmatterAndBody(t *testing.T) {
	t.Parallel()
	out, err := report.Pretty("---\nrun_id: abc\n---\n\n# Collected Volume\n", 80)
	if err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(out, "run_id") || !strings.Contains(out, "Collected Volume") {
		t.Fatalf("unexpected rendering:\n%s", out)
	}
}

func TestPrettyRejectsBrokenFrontmatter(t *testing.T) {
	t.Parallel()
	if _, err := report.Pretty("---\nrun_id: abc\n", 80); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}
