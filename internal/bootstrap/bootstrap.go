package bootstrap

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	figureinadapter "watersim/internal/modules/figure/adapter/in"
	figureoutadapter "watersim/internal/modules/figure/adapter/out"
	figuredto "watersim/internal/modules/figure/dto"
	figureservice "watersim/internal/modules/figure/service"
	figureusecase "watersim/internal/modules/figure/usecase"
	summaryinadapter "watersim/internal/modules/summary/adapter/in"
	summaryservice "watersim/internal/modules/summary/service"
	summaryusecase "watersim/internal/modules/summary/usecase"
	trialinadapter "watersim/internal/modules/trial/adapter/in"
	trialoutadapter "watersim/internal/modules/trial/adapter/out"
	"watersim/internal/modules/trial/domain"
	trialdto "watersim/internal/modules/trial/dto"
	trialout "watersim/internal/modules/trial/port/out"
	trialservice "watersim/internal/modules/trial/service"
	trialusecase "watersim/internal/modules/trial/usecase"
	"watersim/internal/platform/clock"
	"watersim/internal/platform/config"
	"watersim/internal/platform/id"
	uianimation "watersim/internal/ui/animation"
)

type App struct {
	Config     *config.Config
	TrialCLI   trialinadapter.CLIHandler
	SummaryCLI summaryinadapter.CLIHandler
	FigureCLI  figureinadapter.CLIHandler
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	trialUC := trialusecase.NewInteractor(trialservice.NewTrialService(
		clk,
		ids,
		trialoutadapter.NewGonumSamplerFactory(),
		map[domain.Format]trialout.TableExporter{
			domain.FormatXLSX:   trialoutadapter.NewXLSXExporter(),
			domain.FormatCSV:    trialoutadapter.NewCSVExporter(),
			domain.FormatSQLite: trialoutadapter.NewSQLiteExporter(),
		},
		logger.With("module", "trial"),
	))
	summaryUC := summaryusecase.NewInteractor(summaryservice.NewSummaryService(logger.With("module", "summary")))
	figureUC := figureusecase.NewInteractor(figureservice.NewFigureService(
		figureoutadapter.NewGonumRenderer(),
		logger.With("module", "figure"),
	))

	return &App{
		Config:     cfg,
		TrialCLI:   trialinadapter.NewCLIHandler(trialUC),
		SummaryCLI: summaryinadapter.NewCLIHandler(summaryUC),
		FigureCLI:  figureinadapter.NewCLIHandler(figureUC),
	}, nil
}

// TrialConfig maps the experiment section onto the generator input.
func (a *App) TrialConfig() trialdto.ConfigInput {
	e := a.Config.Experiment
	return trialdto.ConfigInput{
		ContainerCapacity: e.ContainerCapacity,
		CollectionTime:    e.CollectionTime,
		TrialsPerCategory: e.TrialsPerCategory,
		LowMean:           e.Low.Mean,
		LowSpread:         e.Low.Spread,
		MediumMean:        e.Medium.Mean,
		MediumSpread:      e.Medium.Spread,
		HighSpread:        e.HighSpread,
		Mode:              e.Mode,
		VolumeBasis:       e.VolumeBasis,
		LiteralCollected:  e.LiteralCollected,
	}
}

func (a *App) FigureInput() figuredto.FigureInput {
	return figuredto.FigureInput{Title: a.Config.Plot.Title, Width: a.Config.Plot.Width, Height: a.Config.Plot.Height}
}

// AnimationInput resolves the animation settings for the configured mode.
func (a *App) AnimationInput() figuredto.AnimationInput {
	mode := a.Config.Experiment.Mode
	return figuredto.AnimationInput{
		FlowRate:  a.Config.Animation.FlowRateFor(mode),
		FrameStep: a.Config.Animation.FrameStep,
		Interval:  a.Config.Animation.Interval,
		Style:     mode,
	}
}

// RunAnimation plays anim in the terminal and returns the frame shown last.
func RunAnimation(anim figuredto.AnimationOutput) (figuredto.FrameOutput, error) {
	program := tea.NewProgram(uianimation.New(anim), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return figuredto.FrameOutput{}, fmt.Errorf("run animation: %w", err)
	}
	model, ok := final.(uianimation.Model)
	if !ok {
		return figuredto.FrameOutput{}, nil
	}
	return model.Frame(), nil
}
