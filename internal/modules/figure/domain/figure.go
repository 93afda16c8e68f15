package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "watersim/internal/platform/errors"
)

const (
	BoxTitle      = "Water Collection Distribution by Flow Rate"
	BoxXLabel     = "Flow Type"
	BoxYLabel     = "Milliliters (ml)"
	CurveTitle    = "Virtual Water Collection Simulation"

	LiteralBoxTitle   = "Water Collection by Flow Type"
	LiteralCurveTitle = "Water Collection Simulation"

	CurveXLabel   = "Time (seconds)"
	CurveYLabel   = "Collected Water (ml)"
	DefaultTitle  = "Water Collection Experiment"
	DefaultWidth  = 10.0
	DefaultHeight = 8.0

	DefaultPlotPath = "water_collection_experiment.png"
)

type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
	FormatPDF ImageFormat = "pdf"
)

// ResolveImageFormat derives the image format from the extension of path.
func ResolveImageFormat(path string) (ImageFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ImageFormat(ext) {
	case FormatPNG, FormatSVG, FormatPDF:
		return ImageFormat(ext), nil
	default:
		return "", fmt.Errorf("%w: image extension %q", apperrors.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type Point struct {
	X, Y float64
}

type Annotation struct {
	At   Point
	Text string
}

type BoxGroup struct {
	Label  string
	Values []float64
}

// Panel is one stacked plot area of a Figure.
type Panel interface {
	PanelTitle() string
}

type BoxPanel struct {
	Title  string
	XLabel string
	YLabel string
	Groups []BoxGroup
}

func (p BoxPanel) PanelTitle() string { return p.Title }

type CurvePanel struct {
	Title       string
	XLabel      string
	YLabel      string
	XMax        float64
	YMax        float64
	Grid        bool
	Points      []Point
	Annotations []Annotation
}

func (p CurvePanel) PanelTitle() string { return p.Title }

// Figure is a caller-owned set of panels stacked top to bottom. Sizes are
// in inches.
type Figure struct {
	Title  string
	Width  float64
	Height float64
	Panels []Panel
}

func NewFigure(title string, width, height float64) *Figure {
	return &Figure{Title: title, Width: width, Height: height}
}

func (f *Figure) AddBoxPanel(p BoxPanel) {
	f.Panels = append(f.Panels, p)
}

func (f *Figure) AddCurvePanel(p CurvePanel) {
	f.Panels = append(f.Panels, p)
}

func (f *Figure) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) {
		return fmt.Errorf("%w: figure size must be positive, got %vx%v", apperrors.ErrInvalidConfig, f.Width, f.Height)
	}
	if len(f.Panels) == 0 {
		return fmt.Errorf("%w: figure has no panels", apperrors.ErrInvalidInput)
	}
	return nil
}
