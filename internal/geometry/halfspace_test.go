package geometry

import "testing"

func TestHalfSpaceEval(t *testing.T) {
	h := NewHalfSpace([]float64{1, 2}, 3)

	v, err := h.Eval([]float64{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("expected 0 on boundary, got %g", v)
	}

	v, err = h.Eval([]float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -3 {
		t.Errorf("expected -3 inside, got %g", v)
	}
}

func TestHalfSpaceEvalDimMismatch(t *testing.T) {
	h := NewHalfSpace([]float64{1, 0}, 1)
	if _, err := h.Eval([]float64{1, 2, 3}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestHalfSpaceNegate(t *testing.T) {
	h := NewHalfSpace([]float64{1, -2}, 5)
	n := h.Negate()

	if n.A[0] != -1 || n.A[1] != 2 {
		t.Errorf("expected negated coeffs [-1 2], got %v", n.A)
	}
	if n.B != -5 {
		t.Errorf("expected negated offset -5, got %g", n.B)
	}
	// Negating twice returns the original.
	nn := n.Negate()
	if nn.A[0] != 1 || nn.A[1] != -2 || nn.B != 5 {
		t.Errorf("double negation drifted: %v %g", nn.A, nn.B)
	}
}

func TestAxisConstraints(t *testing.T) {
	up := AxisUpper(3, 1, 2.5)
	if up.A[0] != 0 || up.A[1] != 1 || up.A[2] != 0 || up.B != 2.5 {
		t.Errorf("unexpected upper constraint: %v %g", up.A, up.B)
	}
	lo := AxisLower(3, 1, -1.5)
	if lo.A[1] != -1 || lo.B != 1.5 {
		t.Errorf("unexpected lower constraint: %v %g", lo.A, lo.B)
	}

	// x_1 = 2.0 satisfies both x_1 <= 2.5 and x_1 >= -1.5.
	x := []float64{0, 2.0, 0}
	if v, _ := up.Eval(x); v > 0 {
		t.Errorf("expected upper satisfied, got %g", v)
	}
	if v, _ := lo.Eval(x); v > 0 {
		t.Errorf("expected lower satisfied, got %g", v)
	}
}

func TestNewHalfSpaceCopiesCoeffs(t *testing.T) {
	a := []float64{1, 2}
	h := NewHalfSpace(a, 0)
	a[0] = 99
	if h.A[0] != 1 {
		t.Error("half-space aliased caller's slice")
	}
}
