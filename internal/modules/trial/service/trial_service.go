package service

import (
	"context"
	"fmt"
	"log/slog"

	"watersim/internal/modules/trial/domain"
	trialout "watersim/internal/modules/trial/port/out"
	"watersim/internal/platform/clock"
	apperrors "watersim/internal/platform/errors"
	"watersim/internal/platform/id"
)

type TrialService struct {
	clock     clock.Clock
	idGen     id.Generator
	samplers  trialout.SamplerFactory
	exporters map[domain.Format]trialout.TableExporter
	logger    *slog.Logger
}

func NewTrialService(clock clock.Clock, idGen id.Generator, samplers trialout.SamplerFactory, exporters map[domain.Format]trialout.TableExporter, logger *slog.Logger) *TrialService {
	return &TrialService{clock: clock, idGen: idGen, samplers: samplers, exporters: exporters, logger: logger}
}

// Generate runs the generator once. Without an explicit seed one is derived
// from the clock and recorded on the run.
func (s *TrialService) Generate(_ context.Context, cfg domain.Config, seed uint64, hasSeed bool) (domain.Run, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Run{}, err
	}
	if !hasSeed {
		seed = uint64(s.clock.Now().UnixNano())
	}
	var sampler domain.NormalSampler
	if cfg.Mode == domain.ModeGenerated {
		sampler = s.samplers.New(seed)
	}
	result, err := domain.Generate(cfg, sampler)
	if err != nil {
		return domain.Run{}, err
	}
	run := domain.Run{ID: s.idGen.New(), Seed: seed, Config: cfg, Result: result}
	s.logger.Info("generated trials",
		"run_id", run.ID,
		"seed", seed,
		"mode", string(cfg.Mode),
		"trials", len(result.Trials),
	)
	if result.NegativeDraws > 0 {
		s.logger.Warn("negative flow-rate draws floored at zero", "run_id", run.ID, "count", result.NegativeDraws)
	}
	return run, nil
}

// Export writes run to path and returns the path actually written.
func (s *TrialService) Export(ctx context.Context, run domain.Run, path string, format domain.Format, timestamp bool) (string, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return "", fmt.Errorf("%w: no exporter for %q", apperrors.ErrUnsupportedFormat, string(format))
	}
	if timestamp {
		path = domain.TimestampedPath(path, s.clock.Now())
	}
	if err := exporter.Export(ctx, path, run); err != nil {
		return "", fmt.Errorf("%w: %s: %w", apperrors.ErrExport, path, err)
	}
	s.logger.Info("exported results table", "run_id", run.ID, "path", path, "format", string(format), "rows", len(run.Result.Trials))
	return path, nil
}
