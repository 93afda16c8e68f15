package usecase

import (
	"context"

	"watersim/internal/modules/summary/domain"
	"watersim/internal/modules/summary/dto"
	summaryin "watersim/internal/modules/summary/port/in"
	"watersim/internal/modules/summary/service"
	trialdto "watersim/internal/modules/trial/dto"
)

type Interactor struct {
	svc *service.SummaryService
}

func NewInteractor(svc *service.SummaryService) summaryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summarize(ctx context.Context, run trialdto.RunOutput) (dto.SummaryOutput, error) {
	stats, err := i.svc.Summarize(ctx, run.RunID, observations(run))
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	out := dto.SummaryOutput{RunID: run.RunID, Columns: domain.StatsColumns, Stats: make([]dto.StatsOutput, 0, len(stats))}
	for _, s := range stats {
		out.Stats = append(out.Stats, dto.StatsOutput{
			FlowType:     s.Category,
			Count:        s.Count,
			Min:          s.Min,
			Q1:           s.Q1,
			Median:       s.Median,
			Q3:           s.Q3,
			Max:          s.Max,
			Mean:         s.Mean,
			StdDev:       s.StdDev,
			LowerWhisker: s.LowerWhisker,
			UpperWhisker: s.UpperWhisker,
			Outliers:     s.Outliers,
			Row:          s.Row(),
		})
	}
	return out, nil
}

func (i *Interactor) Report(ctx context.Context, run trialdto.RunOutput) (dto.ReportOutput, error) {
	meta := domain.ReportMeta{
		RunID:             run.RunID,
		Seed:              run.Seed,
		ContainerCapacity: run.ContainerCapacity,
		CollectionTime:    run.CollectionTime,
		Trials:            len(run.Trials),
	}
	md, err := i.svc.Report(ctx, meta, observations(run))
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{Markdown: md}, nil
}

func observations(run trialdto.RunOutput) []domain.Observation {
	out := make([]domain.Observation, 0, len(run.Trials))
	for _, t := range run.Trials {
		out = append(out, domain.Observation{Category: t.FlowType, Value: t.Collected})
	}
	return out
}
