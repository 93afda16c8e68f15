package components

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws values as block characters scaled against [0, ceiling].
// When there are more values than width, evenly spaced samples are drawn.
func Sparkline(values []float64, ceiling float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		sampled := make([]float64, width)
		for i := range sampled {
			sampled[i] = values[i*len(values)/width]
		}
		values = sampled
	}

	result := make([]rune, len(values))
	for i, v := range values {
		normalized := 0.0
		if ceiling > 0 {
			normalized = v / ceiling
		}
		idx := int(normalized * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		result[i] = blocks[idx]
	}
	return string(result)
}
