package geometry

import "testing"

func TestAxisAligned(t *testing.T) {
	z, err := AxisAligned([]float64{-1, 0}, []float64{1, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if z.Center[0] != 0 || z.Center[1] != 2 {
		t.Errorf("expected center [0 2], got %v", z.Center)
	}
	if z.Generators[0][0] != 1 || z.Generators[0][1] != 0 {
		t.Errorf("expected generator 0 = [1 0], got %v", z.Generators[0])
	}
	if z.Generators[1][0] != 0 || z.Generators[1][1] != 2 {
		t.Errorf("expected generator 1 = [0 2], got %v", z.Generators[1])
	}
}

func TestAxisAlignedInfeasible(t *testing.T) {
	if _, err := AxisAligned([]float64{1}, []float64{-1}); err == nil {
		t.Fatal("expected error for lower > upper")
	}
}

func TestAxisAlignedDimMismatch(t *testing.T) {
	if _, err := AxisAligned([]float64{0}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for mismatched bounds")
	}
}

func TestBoundsRoundTrip(t *testing.T) {
	lower := []float64{-0.7, -0.65, -2.5}
	upper := []float64{0.7, 1.15, 0.5}

	z, err := AxisAligned(lower, upper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lo, hi := z.Bounds()
	for i := range lower {
		if lo[i] != lower[i] {
			t.Errorf("dim %d: lower round-trip %g != %g", i, lo[i], lower[i])
		}
		if hi[i] != upper[i] {
			t.Errorf("dim %d: upper round-trip %g != %g", i, hi[i], upper[i])
		}
	}
}

func TestBoundsDegenerateDim(t *testing.T) {
	z, err := AxisAligned([]float64{3, -1}, []float64{3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lo, hi := z.Bounds()
	if lo[0] != 3 || hi[0] != 3 {
		t.Errorf("expected degenerate dim pinned at 3, got [%g,%g]", lo[0], hi[0])
	}
}
