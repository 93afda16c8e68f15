package dto

type StatsOutput struct {
	FlowType     string
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
	// Row is the formatted table row, aligned with Columns on SummaryOutput.
	Row []string
}

type SummaryOutput struct {
	RunID   string
	Columns []string
	Stats   []StatsOutput
}

type ReportOutput struct {
	Markdown string
}
