package in

import (
	"context"

	"watersim/internal/modules/figure/dto"
	figurein "watersim/internal/modules/figure/port/in"
	trialdto "watersim/internal/modules/trial/dto"
)

type CLIHandler struct {
	usecase figurein.Usecase
}

func NewCLIHandler(usecase figurein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plot(ctx context.Context, run trialdto.RunOutput, path string, figure dto.FigureInput, anim dto.AnimationInput) (dto.PlotOutput, error) {
	return h.usecase.Plot(ctx, figurein.PlotInput{Run: run, Path: path, Figure: figure, Animation: anim})
}

func (h CLIHandler) Animate(ctx context.Context, capacity, collectionTime float64, anim dto.AnimationInput) (dto.AnimationOutput, error) {
	return h.usecase.Animate(ctx, figurein.AnimateInput{ContainerCapacity: capacity, CollectionTime: collectionTime, Animation: anim})
}
