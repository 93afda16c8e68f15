package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "watersim/internal/platform/errors"
)

const (
	DefaultFlowRate  = 2.0
	LiteralFlowRate  = 2.5
	DefaultFrameStep = 0.5
	DefaultInterval  = 20 * time.Millisecond
)

// Style follows the experiment mode. Literal runs keep the titles and the
// truncated volume label of the hand-entered dataset.
type Style string

const (
	StyleGenerated Style = "generated"
	StyleLiteral   Style = "literal"
)

// ParseStyle maps an experiment mode to a style; empty means generated.
func ParseStyle(mode string) (Style, error) {
	switch Style(mode) {
	case "", StyleGenerated:
		return StyleGenerated, nil
	case StyleLiteral:
		return StyleLiteral, nil
	}
	return "", fmt.Errorf("%w: unknown figure style %q", apperrors.ErrInvalidConfig, mode)
}

// Titles returns the box and curve panel titles.
func (s Style) Titles() (box, curve string) {
	if s == StyleLiteral {
		return LiteralBoxTitle, LiteralCurveTitle
	}
	return BoxTitle, CurveTitle
}

func (s Style) volumeLabel(volume float64) string {
	if s == StyleLiteral {
		return fmt.Sprintf("Water: %dml", int(volume))
	}
	return fmt.Sprintf("Water: %.0fml", math.RoundToEven(volume/10)*10)
}

// Animation describes the virtual accumulation curve. Only Capacity and
// CollectionTime are shared with the trial generator.
type Animation struct {
	Capacity       float64
	CollectionTime float64
	FlowRate       float64
	FrameStep      float64
	Interval       time.Duration
	Style          Style
}

func DefaultAnimation(capacity, collectionTime float64) Animation {
	return Animation{
		Capacity:       capacity,
		CollectionTime: collectionTime,
		FlowRate:       DefaultFlowRate,
		FrameStep:      DefaultFrameStep,
		Interval:       DefaultInterval,
		Style:          StyleGenerated,
	}
}

// LiteralAnimation is the animation shown for the hand-entered dataset.
func LiteralAnimation(capacity, collectionTime float64) Animation {
	anim := DefaultAnimation(capacity, collectionTime)
	anim.FlowRate = LiteralFlowRate
	anim.Style = StyleLiteral
	return anim
}

type Frame struct {
	Index       int
	Time        float64
	Volume      float64
	TimeLabel   string
	VolumeLabel string
}

func (a Animation) Validate() error {
	if !(a.Capacity > 0) || !(a.CollectionTime > 0) {
		return fmt.Errorf("%w: animation needs positive capacity and collection time", apperrors.ErrInvalidConfig)
	}
	if !(a.FlowRate >= 0) {
		return fmt.Errorf("%w: animation flow rate must be non-negative, got %v", apperrors.ErrInvalidConfig, a.FlowRate)
	}
	if !(a.FrameStep > 0) {
		return fmt.Errorf("%w: frame step must be positive, got %v", apperrors.ErrInvalidConfig, a.FrameStep)
	}
	if a.Interval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive, got %s", apperrors.ErrInvalidConfig, a.Interval)
	}
	if _, err := ParseStyle(string(a.Style)); err != nil {
		return err
	}
	return nil
}

func (a Animation) FrameCount() int {
	return int(a.CollectionTime / a.FrameStep)
}

// Frame returns frame i. The volume saturates at capacity; the time label
// never exceeds the collection time.
func (a Animation) Frame(i int) Frame {
	t := float64(i) * a.FrameStep
	volume := math.Min(a.FlowRate*t, a.Capacity)
	return Frame{
		Index:       i,
		Time:        t,
		Volume:      volume,
		TimeLabel:   fmt.Sprintf("Time: %.1fs", math.Min(t, a.CollectionTime)),
		VolumeLabel: a.Style.volumeLabel(volume),
	}
}

func (a Animation) Frames() []Frame {
	n := a.FrameCount()
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, a.Frame(i))
	}
	return frames
}
