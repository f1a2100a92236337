package histogram

import (
	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
	"histo/stats/breaks"
)

// Counter 计数类型, 允许浮点以承载面积归一化后的小数计数
type Counter interface {
	uint16 | uint32 | uint64 | uint | float32 | float64
}

// Histo 一维直方图, P 为边界精度, C 为计数类型
// 不变量: len(Breaks) == Bins+1, len(Counts) == Bins, Breaks 严格递增
type Histo[P breaks.Float, C Counter] struct {
	Range  breaks.Range[P]
	Breaks []P
	Bins   int
	Counts []C
	Name   string
}

// New 从样本构造, 区间取样本 min/max, break 按指定方法计算
func New[P breaks.Float, C Counter](data []P, method Method) (*Histo[P, C], error) {
	if len(data) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "input data empty")
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return NewWithRange[P, C](data, breaks.Range[P]{Low: lo, Upper: hi}, method)
}

// NewWithRange 从样本构造, 区间由调用方指定
func NewWithRange[P breaks.Float, C Counter](data []P, r breaks.Range[P], method Method) (*Histo[P, C], error) {
	brs, err := calculateBreaks(data, r, method)
	if err != nil {
		return nil, err
	}
	h := &Histo[P, C]{
		Range:  r,
		Breaks: brs,
		Bins:   len(brs) - 1,
	}
	h.ResetCounts()
	if err := h.FillCounts(data); err != nil {
		return nil, err
	}
	return h, nil
}

// NewWithBreaks 直接用外部 breaks 构造, 必须严格递增
// 区间取 (breaks[0], breaks[last])
func NewWithBreaks[P breaks.Float, C Counter](data []P, inputBreaks []P) (*Histo[P, C], error) {
	if len(inputBreaks) < 2 {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "need at least 2 breaks, got %d", len(inputBreaks))
	}
	if !breaks.IsMonotonicallyIncreasing(inputBreaks) {
		return nil, errorx.New(errCode.INVALID_VALUE, "input breaks are not monotonically increasing")
	}
	brs := make([]P, len(inputBreaks))
	copy(brs, inputBreaks)
	h := &Histo[P, C]{
		Range:  breaks.Range[P]{Low: brs[0], Upper: brs[len(brs)-1]},
		Breaks: brs,
		Bins:   len(brs) - 1,
	}
	h.ResetCounts()
	if err := h.FillCounts(data); err != nil {
		return nil, err
	}
	return h, nil
}

func calculateBreaks[P breaks.Float](data []P, r breaks.Range[P], method Method) ([]P, error) {
	switch method {
	case METHOD_SCOTT:
		return breaks.ScottBreaks(data, r)
	default:
		return nil, errorx.New(errCode.PRECOND_FAILED, "no valid method selected to calculate breaks")
	}
}

// IndexFromValue 二分查找 value 所在箱的下标
// 每箱含左边界, 末箱右边界也含(容差内), 越界返回 OUT_OF_RANGE
func (h *Histo[P, C]) IndexFromValue(value P) (int, error) {
	lo, hi := 0, h.Bins
	if value >= h.Breaks[lo] &&
		(value < h.Breaks[hi] || breaks.IsEqualThan(value, h.Breaks[hi], 1)) {
		for hi-lo >= 2 {
			mid := (hi + lo) / 2
			if value >= h.Breaks[mid] {
				lo = mid
			} else {
				hi = mid
			}
		}
		return lo, nil
	}
	return 0, errorx.Newf(errCode.OUT_OF_RANGE, "IndexFromValue: %v is out of bounds", value)
}

// FillCounts 把样本累加进计数, 不清零已有计数
// 任一样本越界则整体失败, 已有计数保持不变
func (h *Histo[P, C]) FillCounts(data []P) error {
	scratch := make([]C, h.Bins)
	for _, v := range data {
		idx, err := h.IndexFromValue(v)
		if err != nil {
			return err
		}
		scratch[idx]++
	}
	for i, c := range scratch {
		h.Counts[i] += c
	}
	return nil
}

// ResetCounts 按当前箱数重建计数并清零
func (h *Histo[P, C]) ResetCounts() {
	h.Counts = make([]C, h.Bins)
}
