package in

import (
	"context"

	"watersim/internal/modules/summary/dto"
	trialdto "watersim/internal/modules/trial/dto"
)

type Usecase interface {
	Summarize(ctx context.Context, run trialdto.RunOutput) (dto.SummaryOutput, error)
	Report(ctx context.Context, run trialdto.RunOutput) (dto.ReportOutput, error)
}
