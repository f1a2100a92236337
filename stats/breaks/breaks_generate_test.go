package breaks

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"histo/infra/errorx"
	"histo/infra/errorx/errCode"
)

func TestGenerateFromRangeAndBins(t *testing.T) {
	got, err := GenerateFromRangeAndBins(0.0, 20.0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := make([]float64, 11)
	for i := range want {
		want[i] = 2.0 * float64(i)
	}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("got: %v; want: %v", got, want)
	}
}

func TestGenerateFromRangeAndBinsInvalid(t *testing.T) {
	if _, err := GenerateFromRangeAndBins(0.0, 1.0, 0); errorx.Code(err) != errCode.INVALID_VALUE {
		t.Errorf("got: %v; want INVALID_VALUE", err)
	}
}

func TestGenerateFromRangeAndWidthSameUpper(t *testing.T) {
	got, err := GenerateFromRangeAndWidth(0.0, 4.0, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 1, 2, 3, 4}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("got: %v; want: %v", got, want)
	}
}

func TestGenerateFromRangeAndWidthGreaterUpper(t *testing.T) {
	got, err := GenerateFromRangeAndWidth(0.0, 4.5, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 1, 2, 3, 4, 5}
	if !floats.EqualApprox(got, want, 1e-12) {
		t.Errorf("got: %v; want: %v", got, want)
	}
}

func TestGenerateFromRangeAndWidthInvalid(t *testing.T) {
	if _, err := GenerateFromRangeAndWidth(0.0, 4.0, 0.0); errorx.Code(err) != errCode.INVALID_VALUE {
		t.Errorf("got: %v; want INVALID_VALUE", err)
	}
	if _, err := GenerateFromRangeAndWidth(0.0, 4.0, -1.0); errorx.Code(err) != errCode.INVALID_VALUE {
		t.Errorf("got: %v; want INVALID_VALUE", err)
	}
}

func TestIsMonotonicallyIncreasing(t *testing.T) {
	if !IsMonotonicallyIncreasing([]float64{1, 2, 15, 20}) {
		t.Error("expected monotonically increasing")
	}
	if IsMonotonicallyIncreasing([]float64{1, 2, 2, 20}) {
		t.Error("repeated value should not be monotonically increasing")
	}
	if IsMonotonicallyIncreasing([]float64{1, 3, 2}) {
		t.Error("decreasing step should not be monotonically increasing")
	}
}
