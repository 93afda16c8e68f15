package domain

// BuildExperimentFigure lays out the box panel over the accumulation curve
// drawn up to the final frame. Panel titles follow anim.Style.
func BuildExperimentFigure(title string, width, height float64, groups []BoxGroup, anim Animation) *Figure {
	boxTitle, curveTitle := anim.Style.Titles()
	fig := NewFigure(title, width, height)
	fig.AddBoxPanel(BoxPanel{
		Title:  boxTitle,
		XLabel: BoxXLabel,
		YLabel: BoxYLabel,
		Groups: groups,
	})

	frames := anim.Frames()
	curve := CurvePanel{
		Title:  curveTitle,
		XLabel: CurveXLabel,
		YLabel: CurveYLabel,
		XMax:   anim.CollectionTime,
		YMax:   anim.Capacity,
		Grid:   true,
		Points: make([]Point, 0, len(frames)),
	}
	for _, f := range frames {
		curve.Points = append(curve.Points, Point{X: f.Time, Y: f.Volume})
	}
	if len(frames) > 0 {
		last := frames[len(frames)-1]
		curve.Annotations = []Annotation{
			{At: Point{X: 0.05 * curve.XMax, Y: 0.95 * curve.YMax}, Text: last.TimeLabel},
			{At: Point{X: 0.75 * curve.XMax, Y: 0.95 * curve.YMax}, Text: last.VolumeLabel},
		}
	}
	fig.AddCurvePanel(curve)
	return fig
}
