package histogram

import (
	"math"

	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

// 计数类型的最大可表示值
func maxCount[C Counter]() C {
	var z C
	switch p := any(&z).(type) {
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *uint:
		*p = math.MaxUint
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return z
}

// Increase 指定箱计数加一, 到达计数类型上限时报错
func (h *Histo[P, C]) Increase(index int) error {
	if index < 0 || index >= h.Bins {
		return errorx.Newf(errCode.COUNT_BOUNDS, "Increase: index %d out of bounds, bins: %d", index, h.Bins)
	}
	if h.Counts[index] >= maxCount[C]() {
		return errorx.Newf(errCode.COUNT_BOUNDS, "Increase has exceeded the count type, index: %d value: %v", index, h.Counts[index])
	}
	h.Counts[index]++
	return nil
}

// Decrease 指定箱计数减一, 已为零时报错
func (h *Histo[P, C]) Decrease(index int) error {
	if index < 0 || index >= h.Bins {
		return errorx.Newf(errCode.COUNT_BOUNDS, "Decrease: index %d out of bounds, bins: %d", index, h.Bins)
	}
	if h.Counts[index] <= 0 {
		return errorx.Newf(errCode.COUNT_BOUNDS, "Decrease has reached negative value, index: %d value: %v", index, h.Counts[index])
	}
	h.Counts[index]--
	return nil
}

// SetCount 设置指定箱计数, 索引越界或值为负时报错
func (h *Histo[P, C]) SetCount(index int, value C) error {
	if index < 0 || index >= h.Bins {
		return errorx.Newf(errCode.COUNT_BOUNDS, "SetCount: index %d out of bounds, bins: %d", index, h.Bins)
	}
	if value < 0 {
		return errorx.Newf(errCode.COUNT_BOUNDS, "SetCount: negative value %v", value)
	}
	h.Counts[index] = value
	return nil
}
