package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"histo/stats/breaks"
	"histo/stats/histogram"
)

// 每列的对齐宽度
const defaultCellWidth = 18

// Formatter 定宽文本输出, Precision 为小数位数
type Formatter struct {
	Precision int32
	Width     int
}

func NewFormatter(precision int32) Formatter {
	return Formatter{Precision: precision, Width: defaultCellWidth}
}

func (f Formatter) cell(v float64) string {
	return fmt.Sprintf("%*s", f.Width, decimal.NewFromFloat(v).StringFixed(f.Precision))
}

func (f Formatter) countCell(v any) string {
	return fmt.Sprintf("%*v", f.Width, v)
}

// BreaksAndCounts 逐箱输出 "[lo, hi) count", 末箱右闭
func BreaksAndCounts[P breaks.Float, C histogram.Counter](f Formatter, h *histogram.Histo[P, C]) string {
	var sb strings.Builder
	for i := 0; i < h.Bins; i++ {
		closing := ")"
		if i == h.Bins-1 {
			closing = "]"
		}
		fmt.Fprintf(&sb, "[%s,%s%s %s\n",
			f.cell(float64(h.Breaks[i])), f.cell(float64(h.Breaks[i+1])),
			closing, f.countCell(h.Counts[i]))
	}
	return sb.String()
}

// CentersAndCounts 逐箱输出 "center count"
func CentersAndCounts[P breaks.Float, C histogram.Counter](f Formatter, h *histogram.Histo[P, C]) string {
	var sb strings.Builder
	centers := h.BinCenters()
	for i := 0; i < h.Bins; i++ {
		fmt.Fprintf(&sb, "%s %s\n", f.cell(float64(centers[i])), f.countCell(h.Counts[i]))
	}
	return sb.String()
}

// Breaks 单行输出所有 break
func Breaks[P breaks.Float, C histogram.Counter](f Formatter, h *histogram.Histo[P, C]) string {
	cells := make([]string, len(h.Breaks))
	for i, b := range h.Breaks {
		cells[i] = f.cell(float64(b))
	}
	return strings.Join(cells, " ") + "\n"
}

// Centers 单行输出所有箱中点
func Centers[P breaks.Float, C histogram.Counter](f Formatter, h *histogram.Histo[P, C]) string {
	centers := h.BinCenters()
	cells := make([]string, len(centers))
	for i, c := range centers {
		cells[i] = f.cell(float64(c))
	}
	return strings.Join(cells, " ") + "\n"
}

// Counts 单行输出所有计数
func Counts[P breaks.Float, C histogram.Counter](f Formatter, h *histogram.Histo[P, C]) string {
	cells := make([]string, len(h.Counts))
	for i, c := range h.Counts {
		cells[i] = f.countCell(c)
	}
	return strings.Join(cells, " ") + "\n"
}
