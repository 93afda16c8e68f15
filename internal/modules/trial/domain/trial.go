package domain

import (
	"fmt"
	"math"
)

type Category string

const (
	CategoryLow    Category = "Low"
	CategoryMedium Category = "Medium"
	CategoryHigh   Category = "High"
)

// Categories is the fixed generation order.
var Categories = []Category{CategoryLow, CategoryMedium, CategoryHigh}

func (c Category) Validate() error {
	switch c {
	case CategoryLow, CategoryMedium, CategoryHigh:
		return nil
	default:
		return fmt.Errorf("unsupported flow category %q", string(c))
	}
}

// Column headers of the exported results table. Order and spelling are the
// compatibility contract with downstream spreadsheets.
const (
	ColumnTrial     = "Trial"
	ColumnFlowType  = "Flow Type"
	ColumnFlowRate  = "Flow Rate (ml/s)"
	ColumnCollected = "Collected (ml)"
)

var Columns = []string{ColumnTrial, ColumnFlowType, ColumnFlowRate, ColumnCollected}

type Trial struct {
	ID        int
	Category  Category
	FlowRate  float64
	Collected float64
}

// RoundToNearest10 rounds half to even at the tens place.
func RoundToNearest10(v float64) float64 {
	return math.RoundToEven(v/10) * 10
}

// ClampVolume bounds v to [0, capacity].
func ClampVolume(v, capacity float64) float64 {
	return math.Min(math.Max(0, v), capacity)
}
