package breaks

import (
	"math"

	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

// VarianceWelford 单遍 Welford 样本方差, 返回 S/(N-1)
func VarianceWelford[F Float](xs []F) (F, error) {
	if len(xs) == 0 {
		return 0, errorx.New(errCode.EMPTY_VALUE, "input samples empty")
	}
	if len(xs) < 2 {
		return 0, errorx.New(errCode.INVALID_VALUE, "variance needs at least 2 samples")
	}
	var mean, s, mPrev F
	n := 0
	for _, x := range xs {
		n++
		mPrev = mean
		mean += (x - mPrev) / F(n)
		s += (x - mPrev) * (x - mean)
	}
	return s / F(n-1), nil
}

// ScottWidth Scott 正态参考法则: width = 3.5 * sqrt(variance) / cbrt(n)
func ScottWidth[F Float](xs []F) (F, error) {
	v, err := VarianceWelford(xs)
	if err != nil {
		return 0, err
	}
	w := 3.5 * math.Sqrt(float64(v)) / math.Cbrt(float64(len(xs)))
	return F(w), nil
}

// ScottBreaks 按 Scott 法则生成等距 break, 再与给定区间做平衡
// 平衡可能改变 break 数量, 调用方需按 len(breaks)-1 重算箱数
func ScottBreaks[F Float](xs []F, r Range[F]) ([]F, error) {
	width, err := ScottWidth(xs)
	if err != nil {
		return nil, err
	}
	fw := float64(width)
	if math.IsNaN(fw) || math.IsInf(fw, 0) || fw <= 0 {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "degenerate sample: non-positive bin width %v", fw)
	}
	if r.Upper <= r.Low {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "invalid range (%v, %v)", r.Low, r.Upper)
	}

	bins := int(math.Ceil(float64(r.Upper-r.Low) / fw))
	brs := make([]F, bins+1)
	for i := range brs {
		brs[i] = r.Low + F(i)*width
	}

	balanced, _, err := BalanceWithRange(brs, r)
	if err != nil {
		return nil, err
	}
	return balanced, nil
}
