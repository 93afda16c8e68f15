package usecase

import (
	"context"
	"strings"

	"watersim/internal/modules/figure/domain"
	"watersim/internal/modules/figure/dto"
	figurein "watersim/internal/modules/figure/port/in"
	"watersim/internal/modules/figure/service"
	trialdto "watersim/internal/modules/trial/dto"
)

// flowTypes is the box order on the x axis.
var flowTypes = []string{"Low", "Medium", "High"}

type Interactor struct {
	svc *service.FigureService
}

func NewInteractor(svc *service.FigureService) figurein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Plot(ctx context.Context, input figurein.PlotInput) (dto.PlotOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		path = domain.DefaultPlotPath
	}
	settings := input.Animation
	if settings.Style == "" {
		settings.Style = input.Run.Mode
	}
	anim, err := toAnimation(input.Run.ContainerCapacity, input.Run.CollectionTime, settings)
	if err != nil {
		return dto.PlotOutput{}, err
	}
	if err := anim.Validate(); err != nil {
		return dto.PlotOutput{}, err
	}
	title, width, height := input.Figure.Title, input.Figure.Width, input.Figure.Height
	if title == "" {
		title = domain.DefaultTitle
	}
	if width == 0 {
		width = domain.DefaultWidth
	}
	if height == 0 {
		height = domain.DefaultHeight
	}
	fig := domain.BuildExperimentFigure(title, width, height, groups(input.Run), anim)
	format, err := i.svc.Plot(ctx, fig, path)
	if err != nil {
		return dto.PlotOutput{}, err
	}
	return dto.PlotOutput{Path: path, Format: string(format), Panels: len(fig.Panels)}, nil
}

func (i *Interactor) Animate(_ context.Context, input figurein.AnimateInput) (dto.AnimationOutput, error) {
	anim, err := toAnimation(input.ContainerCapacity, input.CollectionTime, input.Animation)
	if err != nil {
		return dto.AnimationOutput{}, err
	}
	frames, err := i.svc.Frames(anim)
	if err != nil {
		return dto.AnimationOutput{}, err
	}
	_, title := anim.Style.Titles()
	out := dto.AnimationOutput{
		Title:          title,
		Capacity:       anim.Capacity,
		CollectionTime: anim.CollectionTime,
		Interval:       anim.Interval,
		Frames:         make([]dto.FrameOutput, 0, len(frames)),
	}
	for _, f := range frames {
		out.Frames = append(out.Frames, dto.FrameOutput{
			Index:       f.Index,
			Time:        f.Time,
			Volume:      f.Volume,
			TimeLabel:   f.TimeLabel,
			VolumeLabel: f.VolumeLabel,
		})
	}
	return out, nil
}

// toAnimation copies the resolved settings as given. Defaults come from the
// config layer, so a zero flow rate stays zero.
func toAnimation(capacity, collectionTime float64, in dto.AnimationInput) (domain.Animation, error) {
	style, err := domain.ParseStyle(in.Style)
	if err != nil {
		return domain.Animation{}, err
	}
	return domain.Animation{
		Capacity:       capacity,
		CollectionTime: collectionTime,
		FlowRate:       in.FlowRate,
		FrameStep:      in.FrameStep,
		Interval:       in.Interval,
		Style:          style,
	}, nil
}

func groups(run trialdto.RunOutput) []domain.BoxGroup {
	byType := make(map[string][]float64, len(flowTypes))
	for _, t := range run.Trials {
		byType[t.FlowType] = append(byType[t.FlowType], t.Collected)
	}
	out := make([]domain.BoxGroup, 0, len(flowTypes))
	for _, ft := range flowTypes {
		out = append(out, domain.BoxGroup{Label: ft, Values: byType[ft]})
	}
	return out
}
