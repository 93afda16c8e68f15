package in

import (
	"context"

	"watersim/internal/modules/summary/dto"
	summaryin "watersim/internal/modules/summary/port/in"
	trialdto "watersim/internal/modules/trial/dto"
)

type CLIHandler struct {
	usecase summaryin.Usecase
}

func NewCLIHandler(usecase summaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summarize(ctx context.Context, run trialdto.RunOutput) (dto.SummaryOutput, error) {
	return h.usecase.Summarize(ctx, run)
}

func (h CLIHandler) Report(ctx context.Context, run trialdto.RunOutput) (string, error) {
	out, err := h.usecase.Report(ctx, run)
	if err != nil {
		return "", err
	}
	return out.Markdown, nil
}
