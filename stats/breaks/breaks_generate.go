package breaks

import (
	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

// GenerateFromRangeAndBins 按区间和箱数生成 bins+1 个等距 break
// breaks[i] = low + i * (upper-low)/bins, 构造上即等距
func GenerateFromRangeAndBins[F Float](low, upper F, bins int) ([]F, error) {
	if bins < 1 {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "bins must be >= 1, got %d", bins)
	}
	width := (upper - low) / F(bins)
	brs := make([]F, bins+1)
	for i := range brs {
		brs[i] = low + F(i)*width
	}
	return brs, nil
}

// GenerateFromRangeAndWidth 按区间和固定宽度生成 break
// 从 low 起步进 width, 保证 upper <= breaks[last] < upper+width
func GenerateFromRangeAndWidth[F Float](low, upper, width F) ([]F, error) {
	if width <= 0 {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "width must be > 0, got %v", width)
	}
	limit := upper + width
	brs := make([]F, 0, int((upper-low)/width)+2)
	for br := low; br < limit; br += width {
		brs = append(brs, br)
	}
	return brs, nil
}
