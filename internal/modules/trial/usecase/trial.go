package usecase

import (
	"context"
	"fmt"
	"strings"

	"watersim/internal/modules/trial/domain"
	"watersim/internal/modules/trial/dto"
	trialin "watersim/internal/modules/trial/port/in"
	"watersim/internal/modules/trial/service"
	apperrors "watersim/internal/platform/errors"
)

type Interactor struct {
	svc *service.TrialService
}

func NewInteractor(svc *service.TrialService) trialin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Generate(ctx context.Context, input dto.GenerateInput) (dto.RunOutput, error) {
	run, err := i.svc.Generate(ctx, toDomainConfig(input.Config), input.Seed, input.HasSeed)
	if err != nil {
		return dto.RunOutput{}, err
	}
	return toRunOutput(run), nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		path = domain.DefaultExportPath
	}
	format, err := domain.ResolveFormat(path, input.Format)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	run, err := fromRunOutput(input.Run)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	written, err := i.svc.Export(ctx, run, path, format, input.Timestamp)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: written, Format: string(format), Rows: len(run.Result.Trials)}, nil
}

func toDomainConfig(in dto.ConfigInput) domain.Config {
	literal := in.LiteralCollected
	if len(literal) == 0 && domain.Mode(in.Mode) == domain.ModeLiteral {
		literal = domain.DefaultLiteralCollected()
	}
	return domain.Config{
		ContainerCapacity: in.ContainerCapacity,
		CollectionTime:    in.CollectionTime,
		TrialsPerCategory: in.TrialsPerCategory,
		Low:               domain.Distribution{Mean: in.LowMean, Spread: in.LowSpread},
		Medium:            domain.Distribution{Mean: in.MediumMean, Spread: in.MediumSpread},
		HighSpread:        in.HighSpread,
		Mode:              domain.Mode(in.Mode),
		VolumeBasis:       domain.VolumeBasis(in.VolumeBasis),
		LiteralCollected:  literal,
	}
}

func toRunOutput(run domain.Run) dto.RunOutput {
	trials := make([]dto.TrialOutput, 0, len(run.Result.Trials))
	for _, t := range run.Result.Trials {
		trials = append(trials, dto.TrialOutput{ID: t.ID, FlowType: string(t.Category), FlowRate: t.FlowRate, Collected: t.Collected})
	}
	return dto.RunOutput{
		RunID:             run.ID,
		Seed:              run.Seed,
		Mode:              string(run.Config.Mode),
		VolumeBasis:       string(run.Config.VolumeBasis),
		ContainerCapacity: run.Config.ContainerCapacity,
		CollectionTime:    run.Config.CollectionTime,
		TrialsPerCategory: run.Config.TrialsPerCategory,
		NegativeDraws:     run.Result.NegativeDraws,
		Columns:           domain.Columns,
		Trials:            trials,
	}
}

func fromRunOutput(out dto.RunOutput) (domain.Run, error) {
	trials := make([]domain.Trial, 0, len(out.Trials))
	for _, t := range out.Trials {
		category := domain.Category(t.FlowType)
		if err := category.Validate(); err != nil {
			return domain.Run{}, fmt.Errorf("%w: trial %d: %w", apperrors.ErrInvalidInput, t.ID, err)
		}
		trials = append(trials, domain.Trial{ID: t.ID, Category: category, FlowRate: t.FlowRate, Collected: t.Collected})
	}
	cfg := domain.DefaultConfig()
	cfg.Mode = domain.Mode(out.Mode)
	cfg.VolumeBasis = domain.VolumeBasis(out.VolumeBasis)
	cfg.ContainerCapacity = out.ContainerCapacity
	cfg.CollectionTime = out.CollectionTime
	cfg.TrialsPerCategory = out.TrialsPerCategory
	return domain.Run{
		ID:     out.RunID,
		Seed:   out.Seed,
		Config: cfg,
		Result: domain.Result{Trials: trials, NegativeDraws: out.NegativeDraws},
	}, nil
}
