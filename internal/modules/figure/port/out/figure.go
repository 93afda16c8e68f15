package out

import (
	"context"

	"watersim/internal/modules/figure/domain"
)

type Renderer interface {
	Render(ctx context.Context, fig *domain.Figure, path string, format domain.ImageFormat) error
}
