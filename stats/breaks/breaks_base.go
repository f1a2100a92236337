package breaks

import "math"

// Float 分箱边界的精度类型
type Float interface {
	float32 | float64
}

// Range 分箱边界的上下限, 要求 Low < Upper
type Range[F Float] struct {
	Low   F
	Upper F
}

// 等距比较在多个 break 上会累积浮点误差, 用放宽 100 倍的容差
const EquidistantEpsFactor = 100

// Epsilon 对应精度类型的机器精度
func Epsilon[F Float]() F {
	var z F
	switch p := any(&z).(type) {
	case *float32:
		*p = math.Nextafter32(1, 2) - 1
	case *float64:
		*p = math.Nextafter(1, 2) - 1
	}
	return z
}

// IsEqualThan 浮点相等判断: |a-b| <= nEps * epsilon
// 默认 nEps = 1, 等距检查用 EquidistantEpsFactor
func IsEqualThan[F Float](a, b F, nEps F) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= nEps*Epsilon[F]()
}

// AreEquidistant 检查相邻间距是否都等于首个间距(容差放宽)
func AreEquidistant[F Float](brs []F) bool {
	if len(brs) < 3 {
		return true
	}
	diff := brs[1] - brs[0]
	for i := 1; i < len(brs); i++ {
		if !IsEqualThan(brs[i]-brs[i-1], diff, EquidistantEpsFactor) {
			return false
		}
	}
	return true
}

// IsMonotonicallyIncreasing 严格递增检查, 用于外部传入的 breaks
func IsMonotonicallyIncreasing[F Float](brs []F) bool {
	for i := 1; i < len(brs); i++ {
		if brs[i] <= brs[i-1] {
			return false
		}
	}
	return true
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}
