package histogram

import (
	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
	"histo/stats/breaks"
)

// BinCenters 每箱中点: (breaks[i] + breaks[i+1]) / 2
func (h *Histo[P, C]) BinCenters() []P {
	centers := make([]P, h.Bins)
	for i := range centers {
		centers[i] = h.Breaks[i] + (h.Breaks[i+1]-h.Breaks[i])/2
	}
	return centers
}

// Mean 箱中点按计数加权求和后除以箱数
// 注意: 除的是 Bins, 不是计数总和, 语义保持不变
func Mean[P breaks.Float, C Counter](h *Histo[P, C]) float64 {
	centers := h.BinCenters()
	var sum float64
	for i, c := range centers {
		sum += float64(c) * float64(h.Counts[i])
	}
	return sum / float64(h.Bins)
}

// NormalizeByArea 面积归一化:
// counts[i] = counts[i]*width[i] / Σ(counts[j]*width[j])
// 返回计数为精度类型的新直方图, breaks 与箱数不变
func NormalizeByArea[P breaks.Float, C Counter](h *Histo[P, C]) (*Histo[P, P], error) {
	var area float64
	for i := 0; i < h.Bins; i++ {
		w := float64(h.Breaks[i+1] - h.Breaks[i])
		if w < 0 {
			w = -w
		}
		area += float64(h.Counts[i]) * w
	}
	if area == 0 {
		return nil, errorx.New(errCode.INVALID_VALUE, "cannot normalize histogram with zero area")
	}

	brs := make([]P, len(h.Breaks))
	copy(brs, h.Breaks)
	normalized := &Histo[P, P]{
		Range:  h.Range,
		Breaks: brs,
		Bins:   h.Bins,
		Counts: make([]P, h.Bins),
		Name:   h.Name,
	}
	for i := 0; i < h.Bins; i++ {
		w := float64(h.Breaks[i+1] - h.Breaks[i])
		if w < 0 {
			w = -w
		}
		normalized.Counts[i] = P(float64(h.Counts[i]) * w / area)
	}
	return normalized, nil
}
