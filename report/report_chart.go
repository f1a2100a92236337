package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"histo/stats/breaks"
	"histo/stats/histogram"
)

// RenderChart 文本图表, 每箱一行, 按最大计数把条长缩放到 width 列
// CHART_BAR 画 "#" 条, CHART_LINE 只画落点 "*"
func RenderChart[P breaks.Float, C histogram.Counter](h *histogram.Histo[P, C], chartType ChartType, width int) (string, error) {
	if chartType != CHART_LINE && chartType != CHART_BAR {
		return "", fmt.Errorf("RenderChart: unknown chart type %d", chartType)
	}
	if width < 10 {
		width = 10
	}

	counts := make([]float64, h.Bins)
	for i, c := range h.Counts {
		counts[i] = float64(c)
	}
	max := floats.Max(counts)
	total := floats.Sum(counts)

	var sb strings.Builder
	if h.Name != "" {
		fmt.Fprintf(&sb, "%s (n=%g)\n", h.Name, total)
	}
	centers := h.BinCenters()
	for i := 0; i < h.Bins; i++ {
		bars := 0
		if max > 0 {
			bars = int(counts[i] / max * float64(width))
		}
		switch chartType {
		case CHART_BAR:
			fmt.Fprintf(&sb, "%10.4f: %s\n", float64(centers[i]), strings.Repeat("#", bars))
		case CHART_LINE:
			fmt.Fprintf(&sb, "%10.4f: %s*\n", float64(centers[i]), strings.Repeat(" ", bars))
		}
	}
	return sb.String(), nil
}
