package breaks

import (
	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

// 删最后一个 break 与追加新 break 之间的偏置系数, 1 为无偏置, <1 偏向追加
const biasToAddBin = 0.8

// BalanceWithRange 把一组等距 break 与给定区间对齐:
// 对齐后 breaks[0] == r.Low, breaks[last] 在容差内等于 r.Upper, 且保持等距
// 只平移/伸缩整体宽度或增删末尾 break, 不重排
//
// 输入必须等距, 否则返回 PRECOND_FAILED
// 返回新切片(不与输入共享底层数组)和是否发生过修改
//
// 终止性: 追加循环每步以固定正宽度逼近上限, 收缩只做一次
func BalanceWithRange[F Float](input []F, r Range[F]) ([]F, bool, error) {
	if len(input) < 2 {
		return nil, false, errorx.Newf(errCode.INVALID_VALUE, "need at least 2 breaks, got %d", len(input))
	}
	if !AreEquidistant(input) {
		return nil, false, errorx.New(errCode.PRECOND_FAILED, "cannot balance non-equidistant breaks")
	}

	brs := make([]F, len(input))
	copy(brs, input)
	nbins := len(brs) - 1
	width := brs[1] - brs[0]

	// diffLow > 0 表示还没到下限, < 0 表示越过
	diffLow := brs[0] - r.Low
	// diffUpper < 0 表示还没到上限, > 0 表示越过
	diffUpper := brs[nbins] - r.Upper
	if IsEqualThan(diffLow, 0, 1) && IsEqualThan(diffUpper, 0, 1) {
		return brs, false, nil
	}

	// 先把首个 break 平移到下限, 其余整体跟着移动
	if !IsEqualThan(diffLow, 0, 1) {
		for i := range brs {
			brs[i] -= diffLow
		}
	}
	diffUpper = brs[nbins] - r.Upper
	if IsEqualThan(diffUpper, 0, 1) {
		return brs, true, nil
	}

	// 检查删掉末尾 break 再整体扩张是否比追加更近
	diffUpperBefore := brs[nbins-1] - r.Upper
	if diffUpperBefore < 0 && diffUpper > 0 &&
		abs(diffUpperBefore) < biasToAddBin*abs(diffUpper) {
		nbins--
		brs = brs[:len(brs)-1]
		widthToExpand := diffUpperBefore / F(nbins)
		shrinkOrExpand(brs, -widthToExpand)
	}
	diffUpper = brs[nbins] - r.Upper
	if IsEqualThan(diffUpper, 0, 1) {
		return brs, true, nil
	}

	// 还没到上限就按原宽度逐个追加
	for diffUpper < 0 {
		nbins++
		brs = append(brs, r.Low+F(nbins)*width)
		diffUpper = brs[nbins] - r.Upper
	}
	if IsEqualThan(diffUpper, 0, 1) {
		return brs, true, nil
	}

	// 越过上限, 均匀收缩间距让末尾 break 落在上限, 首个 break 不动
	widthToShrink := diffUpper / F(nbins)
	shrinkOrExpand(brs, -widthToShrink)
	return brs, true, nil
}

// brs[i] += i * d, d > 0 扩张, d < 0 收缩, brs[0] 不变
func shrinkOrExpand[F Float](brs []F, d F) {
	for i := range brs {
		brs[i] += F(i) * d
	}
}
