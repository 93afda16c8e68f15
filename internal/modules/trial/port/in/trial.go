package in

import (
	"context"

	"watersim/internal/modules/trial/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.RunOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
