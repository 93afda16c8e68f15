package out

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"watersim/internal/modules/figure/domain"
	figureout "watersim/internal/modules/figure/port/out"
)

var (
	curveColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	gridColor  = color.Gray{Y: 0xd0}
)

type GonumRenderer struct{}

func NewGonumRenderer() figureout.Renderer {
	return &GonumRenderer{}
}

func (r *GonumRenderer) Render(_ context.Context, fig *domain.Figure, path string, format domain.ImageFormat) (err error) {
	plots := make([][]*plot.Plot, 0, len(fig.Panels))
	for _, panel := range fig.Panels {
		p, buildErr := buildPanel(panel)
		if buildErr != nil {
			return fmt.Errorf("build panel %q: %w", panel.PanelTitle(), buildErr)
		}
		plots = append(plots, []*plot.Plot{p})
	}

	width := vg.Length(fig.Width) * vg.Inch
	height := vg.Length(fig.Height) * vg.Inch
	canvas, err := draw.NewFormattedCanvas(width, height, string(format))
	if err != nil {
		return fmt.Errorf("new %s canvas: %w", format, err)
	}
	dc := draw.New(canvas)

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	if fig.Title != "" {
		titleStyle := plots[0][0].Title.TextStyle
		titleStyle.XAlign = draw.XCenter
		titleStyle.YAlign = draw.YTop
		dc.FillText(titleStyle, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Millimeter}, fig.Title)
		tiles.PadTop += titleStyle.Height(fig.Title) + vg.Millimeter*2
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create figure directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close figure file: %w", closeErr)
		}
	}()
	if _, err := canvas.WriteTo(f); err != nil {
		return fmt.Errorf("write %s figure: %w", format, err)
	}
	return nil
}

func buildPanel(panel domain.Panel) (*plot.Plot, error) {
	switch p := panel.(type) {
	case domain.BoxPanel:
		return buildBoxPlot(p)
	case domain.CurvePanel:
		return buildCurvePlot(p)
	default:
		return nil, fmt.Errorf("unsupported panel type %T", panel)
	}
}

func buildBoxPlot(panel domain.BoxPanel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel

	names := make([]string, 0, len(panel.Groups))
	for _, g := range panel.Groups {
		if len(g.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(28), float64(len(names)), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("box for %s: %w", g.Label, err)
		}
		p.Add(box)
		names = append(names, g.Label)
	}
	p.NominalX(names...)
	p.Add(plotter.NewGrid())
	return p, nil
}

func buildCurvePlot(panel domain.CurvePanel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.X.Min, p.X.Max = 0, panel.XMax
	p.Y.Min, p.Y.Max = 0, panel.YMax

	if panel.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = gridColor
		grid.Horizontal.Color = gridColor
		p.Add(grid)
	}

	if len(panel.Points) > 0 {
		xys := make(plotter.XYs, len(panel.Points))
		for i, pt := range panel.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("accumulation line: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColor
		p.Add(line)
	}

	if len(panel.Annotations) > 0 {
		labels := plotter.XYLabels{
			XYs:    make([]plotter.XY, len(panel.Annotations)),
			Labels: make([]string, len(panel.Annotations)),
		}
		for i, a := range panel.Annotations {
			labels.XYs[i] = plotter.XY{X: a.At.X, Y: a.At.Y}
			labels.Labels[i] = a.Text
		}
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, fmt.Errorf("annotations: %w", err)
		}
		p.Add(l)
	}
	// Adding plotters widens the axes to their data; restore the fixed ranges.
	p.X.Min, p.X.Max = 0, panel.XMax
	p.Y.Min, p.Y.Max = 0, panel.YMax
	return p, nil
}
