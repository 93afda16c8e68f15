package in

import (
	"context"

	"watersim/internal/modules/figure/dto"
	trialdto "watersim/internal/modules/trial/dto"
)

type PlotInput struct {
	Run       trialdto.RunOutput
	Path      string
	Figure    dto.FigureInput
	Animation dto.AnimationInput
}

type AnimateInput struct {
	ContainerCapacity float64
	CollectionTime    float64
	Animation         dto.AnimationInput
}

type Usecase interface {
	Plot(ctx context.Context, input PlotInput) (dto.PlotOutput, error)
	Animate(ctx context.Context, input AnimateInput) (dto.AnimationOutput, error)
}
