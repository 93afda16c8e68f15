package dto

type ConfigInput struct {
	ContainerCapacity float64
	CollectionTime    float64
	TrialsPerCategory int
	LowMean           float64
	LowSpread         float64
	MediumMean        float64
	MediumSpread      float64
	HighSpread        float64
	Mode              string
	VolumeBasis       string
	LiteralCollected  []float64
}

type GenerateInput struct {
	Config ConfigInput
	// Seed is used only when HasSeed is set; otherwise one is derived.
	Seed    uint64
	HasSeed bool
}

type TrialOutput struct {
	ID        int
	FlowType  string
	FlowRate  float64
	Collected float64
}

type RunOutput struct {
	RunID             string
	Seed              uint64
	Mode              string
	VolumeBasis       string
	ContainerCapacity float64
	CollectionTime    float64
	TrialsPerCategory int
	NegativeDraws     int
	// Columns is the export header, in order.
	Columns []string
	Trials  []TrialOutput
}

type ExportInput struct {
	Run       RunOutput
	Path      string
	Format    string
	Timestamp bool
}

type ExportOutput struct {
	Path   string
	Format string
	Rows   int
}
