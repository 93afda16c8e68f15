package domain

import (
	"strconv"
	"strings"

	"watersim/internal/platform/markdown"
)

type ReportMeta struct {
	RunID             string  `yaml:"run_id"`
	Seed              uint64  `yaml:"seed"`
	ContainerCapacity float64 `yaml:"container_capacity"`
	CollectionTime    float64 `yaml:"collection_time"`
	Trials            int     `yaml:"trials"`
}

var StatsColumns = []string{"Flow Type", "Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max", "Outliers"}

// Row formats s in StatsColumns order.
func (s CategoryStats) Row() []string {
	outliers := make([]string, 0, len(s.Outliers))
	for _, v := range s.Outliers {
		outliers = append(outliers, formatValue(v))
	}
	joined := strings.Join(outliers, ", ")
	if joined == "" {
		joined = "-"
	}
	return []string{
		s.Category,
		strconv.Itoa(s.Count),
		formatValue(s.Mean),
		formatValue(s.StdDev),
		formatValue(s.Min),
		formatValue(s.Q1),
		formatValue(s.Median),
		formatValue(s.Q3),
		formatValue(s.Max),
		joined,
	}
}

// Report renders stats as a markdown document with YAML frontmatter.
func Report(meta ReportMeta, stats []CategoryStats) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, s.Row())
	}
	var body strings.Builder
	body.WriteString("# Collected Volume by Flow Type\n\n")
	body.WriteString(markdown.Table(StatsColumns, rows))
	return markdown.RenderFrontmatter(meta, body.String())
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
