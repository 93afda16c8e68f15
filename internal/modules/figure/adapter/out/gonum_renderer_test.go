package out_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"rsc.io/pdf"

	figureoutadapter "watersim/internal/modules/figure/adapter/out"
	"watersim/internal/modules/figure/domain"
)

func sampleFigure() *domain.Figure {
	groups := []domain.BoxGroup{
		{Label: "Low", Values: []float64{200, 220, 240, 210}},
		{Label: "Medium", Values: []float64{360, 380, 330, 400}},
		{Label: "High", Values: []float64{500, 500, 480, 500}},
	}
	return domain.BuildExperimentFigure("Water Collection Experiment", 10, 8, groups, domain.DefaultAnimation(500, 180))
}

func TestGonumRendererWritesPNG(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "figure.png")
	if err := figureoutadapter.NewGonumRenderer().Render(context.Background(), sampleFigure(), path, domain.FormatPNG); err != nil {
		t.Fatalf("render png: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a PNG")
	}
}

func TestGonumRendererWritesSVG(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "figure.svg")
	if err := figureoutadapter.NewGonumRenderer().Render(context.Background(), sampleFigure(), path, domain.FormatSVG); err != nil {
		t.Fatalf("render svg: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(raw, []byte("<svg")) {
		t.Fatalf("output is not an SVG document")
	}
}

func TestGonumRendererWritesReadablePDF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "figure.pdf")
	if err := figureoutadapter.NewGonumRenderer().Render(context.Background(), sampleFigure(), path, domain.FormatPDF); err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	r, err := pdf.Open(path)
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	if r.NumPage() != 1 {
		t.Fatalf("expected one page, got %d", r.NumPage())
	}
}

func TestGonumRendererCreatesParentDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "figs", "nested", "figure.png")
	if err := figureoutadapter.NewGonumRenderer().Render(context.Background(), sampleFigure(), path, domain.FormatPNG); err != nil {
		t.Fatalf("render into missing directory: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty figure: %v", err)
	}
}

func TestGonumRendererFailsWhenParentIsAFile(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	path := filepath.Join(blocker, "figure.png")
	if err := figureoutadapter.NewGonumRenderer().Render(context.Background(), sampleFigure(), path, domain.FormatPNG); err == nil {
		t.Fatalf("expected error when parent path is a file")
	}
}
