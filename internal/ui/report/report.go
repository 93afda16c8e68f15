package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	summarydto "watersim/internal/modules/summary/dto"
	trialdto "watersim/internal/modules/trial/dto"
	"watersim/internal/platform/markdown"
	"watersim/internal/ui/theme"
)

// TrialTable renders the experimental results table.
func TrialTable(run trialdto.RunOutput) string {
	rows := make([][]string, 0, len(run.Trials))
	for _, t := range run.Trials {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.FlowType,
			formatNumber(t.FlowRate),
			formatNumber(t.Collected),
		})
	}
	return theme.Title.Render("Experimental Results Table:") + "\n" + render(run.Columns, rows)
}

// StatsTable renders per-category statistics.
func StatsTable(summary summarydto.SummaryOutput) string {
	rows := make([][]string, 0, len(summary.Stats))
	for _, s := range summary.Stats {
		rows = append(rows, s.Row)
	}
	return theme.Title.Render("Collected (ml) by Flow Type") + "\n" + render(summary.Columns, rows)
}

// Pretty renders a markdown report for the terminal. Frontmatter is shown
// as a YAML code block ahead of the body.
func Pretty(md string, width int) (string, error) {
	raw, body, err := markdown.SplitFrontmatter(md)
	if err != nil {
		return "", err
	}
	if raw != "" {
		body = "```yaml\n" + raw + "```\n" + body
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("new markdown renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func render(header []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorder).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})
	return strings.TrimRight(t.String(), "\n") + "\n"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
