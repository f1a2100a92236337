package breaks

import (
	"math"
	"testing"

	legacystat "github.com/gonum/stat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

func TestVarianceWelford(t *testing.T) {
	got, err := VarianceWelford([]float64{5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 2.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("got: %v; want: %v", got, want)
	}
}

// Welford 结果与两套 gonum 的方差实现对拍
func TestVarianceWelfordAgainstGonum(t *testing.T) {
	xs := []float64{1.0, 1.0, 2.0, 3.0, 19.0, -4.2, 0.5, 7.75}
	got, err := VarianceWelford(xs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := stat.Variance(xs, nil); math.Abs(got-want) > 1e-9 {
		t.Errorf("got: %v; gonum v1: %v", got, want)
	}
	if want := legacystat.Variance(xs, nil); math.Abs(got-want) > 1e-9 {
		t.Errorf("got: %v; legacy gonum: %v", got, want)
	}
}

func TestVarianceWelfordDegenerate(t *testing.T) {
	if _, err := VarianceWelford([]float64{}); errorx.Code(err) != errCode.EMPTY_VALUE {
		t.Errorf("got: %v; want EMPTY_VALUE", err)
	}
	if _, err := VarianceWelford([]float64{1.0}); errorx.Code(err) != errCode.INVALID_VALUE {
		t.Errorf("got: %v; want INVALID_VALUE", err)
	}
}

func TestScottWidth(t *testing.T) {
	got, err := ScottWidth([]float64{1, 3, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// variance = 4, n = 3
	want := 3.5 * 2.0 / math.Cbrt(3.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got: %v; want: %v", got, want)
	}
}

func TestScottBreaksSingleBin(t *testing.T) {
	got, err := ScottBreaks([]float64{1, 3, 5}, Range[float64]{Low: 1, Upper: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floats.EqualApprox(got, []float64{1, 5}, 1e-12) {
		t.Errorf("got: %v; want [1 5]", got)
	}
}

func TestScottBreaksConstantSample(t *testing.T) {
	_, err := ScottBreaks([]float64{2, 2, 2}, Range[float64]{Low: 2, Upper: 2})
	if errorx.Code(err) != errCode.INVALID_VALUE {
		t.Errorf("got: %v; want INVALID_VALUE", err)
	}
}

func TestScottBreaksFloat32(t *testing.T) {
	got, err := ScottBreaks([]float32{1, 3, 5}, Range[float32]{Low: 1, Upper: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d breaks; want 2", len(got))
	}
	if !IsEqualThan(got[0], 1, 1) || !IsEqualThan(got[1], 5, 100) {
		t.Errorf("got: %v; want [1 5]", got)
	}
}
