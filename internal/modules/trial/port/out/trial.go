package out

import (
	"context"

	"watersim/internal/modules/trial/domain"
)

// SamplerFactory hands out an independent seeded sampler per run.
type SamplerFactory interface {
	New(seed uint64) domain.NormalSampler
}

// TableExporter writes the results table of a run to path.
type TableExporter interface {
	Export(ctx context.Context, path string, run domain.Run) error
}
