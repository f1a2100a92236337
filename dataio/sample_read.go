package dataio

import (
	"fmt"
	"os"

	"github.com/gonum/stat"
	"github.com/tidwall/gjson"

	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

// LoadSamples 从 JSON 文件读样本
// 接受顶层数值数组, 或带 samples 数组的对象
func LoadSamples(path string) ([]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	parsed := gjson.ParseBytes(b)
	arr := parsed
	if parsed.IsObject() {
		arr = parsed.Get("samples")
	}
	if !arr.IsArray() {
		return nil, errorx.New(errCode.INVALID_VALUE, "expected a JSON array or an object with a samples array")
	}

	vals := arr.Array()
	if len(vals) == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "no samples in input")
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v.Type != gjson.Number {
			return nil, errorx.Newf(errCode.INVALID_VALUE, "non-numeric sample at index %d: %s", i, v.Raw)
		}
		out[i] = v.Float()
	}
	return out, nil
}

// Summarize 样本概要: 个数, 均值, 样本方差
// 用于构图前的日志输出
func Summarize(xs []float64) (n int, mean, variance float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		variance = stat.Variance(xs, nil)
	}
	return len(xs), mean, variance
}
