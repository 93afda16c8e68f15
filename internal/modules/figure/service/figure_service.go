package service

import (
	"context"
	"fmt"
	"log/slog"

	"watersim/internal/modules/figure/domain"
	figureout "watersim/internal/modules/figure/port/out"
	apperrors "watersim/internal/platform/errors"
)

type FigureService struct {
	renderer figureout.Renderer
	logger   *slog.Logger
}

func NewFigureService(renderer figureout.Renderer, logger *slog.Logger) *FigureService {
	return &FigureService{renderer: renderer, logger: logger}
}

// Plot renders fig to path in the format implied by its extension.
func (s *FigureService) Plot(ctx context.Context, fig *domain.Figure, path string) (domain.ImageFormat, error) {
	format, err := domain.ResolveImageFormat(path)
	if err != nil {
		return "", err
	}
	if err := fig.Validate(); err != nil {
		return "", err
	}
	if err := s.renderer.Render(ctx, fig, path, format); err != nil {
		return "", fmt.Errorf("%w: %s: %w", apperrors.ErrExport, path, err)
	}
	s.logger.Info("rendered figure", "path", path, "format", string(format), "panels", len(fig.Panels))
	return format, nil
}

func (s *FigureService) Frames(anim domain.Animation) ([]domain.Frame, error) {
	if err := anim.Validate(); err != nil {
		return nil, err
	}
	frames := anim.Frames()
	s.logger.Debug("computed animation frames", "frames", len(frames), "interval", anim.Interval)
	return frames, nil
}
