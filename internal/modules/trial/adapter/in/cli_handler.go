package in

import (
	"context"

	trialdto "watersim/internal/modules/trial/dto"
	trialin "watersim/internal/modules/trial/port/in"
)

type CLIHandler struct {
	usecase trialin.Usecase
}

func NewCLIHandler(usecase trialin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, cfg trialdto.ConfigInput, seed uint64, hasSeed bool) (trialdto.RunOutput, error) {
	return h.usecase.Generate(ctx, trialdto.GenerateInput{Config: cfg, Seed: seed, HasSeed: hasSeed})
}

func (h CLIHandler) Export(ctx context.Context, run trialdto.RunOutput, path, format string, timestamp bool) (trialdto.ExportOutput, error) {
	return h.usecase.Export(ctx, trialdto.ExportInput{Run: run, Path: path, Format: format, Timestamp: timestamp})
}
