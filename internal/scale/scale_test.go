package scale

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	min := []float64{-2, 0}
	max := []float64{2, 10}

	out, err := Normalize([]float64{0, 5}, min, max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("expected midpoints to map to 0, got %v", out)
	}

	out, err = Normalize([]float64{-2, 10}, min, max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != -1 || out[1] != 1 {
		t.Errorf("expected extremes to map to ±1, got %v", out)
	}
}

func TestNormalizeDegenerateDim(t *testing.T) {
	out, err := Normalize([]float64{7}, []float64{7}, []float64{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 0 {
		t.Errorf("expected degenerate dim to map to 0, got %g", out[0])
	}
}

func TestNormalizeDimMismatch(t *testing.T) {
	if _, err := Normalize([]float64{0, 0}, []float64{-1}, []float64{1}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestRoundTrip(t *testing.T) {
	min := []float64{-3.14, -5, 0}
	max := []float64{3.14, 5, 1}
	x := []float64{1.5, -4.2, 0.25}

	n, err := Normalize(x, min, max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Denormalize(n, min, max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range x {
		if math.Abs(back[i]-x[i]) > 1e-12 {
			t.Errorf("dim %d: round trip %g != %g", i, back[i], x[i])
		}
	}
}

func TestNormalizeBounds(t *testing.T) {
	min := []float64{-4, -4}
	max := []float64{4, 4}

	// A tightened raw box [-2, 2] x [0, 4] lands at [-0.5, 0.5] x [0, 1].
	lo, hi, err := NormalizeBounds([]float64{-2, 0}, []float64{2, 4}, min, max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo[0] != -0.5 || hi[0] != 0.5 {
		t.Errorf("dim 0: expected [-0.5, 0.5], got [%g, %g]", lo[0], hi[0])
	}
	if lo[1] != 0 || hi[1] != 1 {
		t.Errorf("dim 1: expected [0, 1], got [%g, %g]", lo[1], hi[1])
	}
}
