package dto

import "time"

// AnimationInput carries resolved settings; zero values are used as given.
type AnimationInput struct {
	FlowRate  float64
	FrameStep float64
	Interval  time.Duration
	// Style is the experiment mode. Plot falls back to the run's mode when
	// it is empty.
	Style string
}

type FigureInput struct {
	Title  string
	Width  float64
	Height float64
}

type PlotOutput struct {
	Path   string
	Format string
	Panels int
}

type FrameOutput struct {
	Index       int
	Time        float64
	Volume      float64
	TimeLabel   string
	VolumeLabel string
}

type AnimationOutput struct {
	Title          string
	Capacity       float64
	CollectionTime float64
	Interval       time.Duration
	Frames         []FrameOutput
}
