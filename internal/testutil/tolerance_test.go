package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffRange(t *testing.T) {
	a := []float64{9, 1, 2, 9}
	b := []float64{0, 1, 2.5, 0}

	d, err := MaxAbsDiffRange(a, b, 1, 3)
	if err != nil {
		t.Fatalf("MaxAbsDiffRange error: %v", err)
	}

	if d != 0.5 {
		t.Fatalf("MaxAbsDiffRange = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiffRange(a, b, 2, 5); err == nil {
		t.Fatal("expected error for out-of-range window")
	}
}

func TestUniformGrid(t *testing.T) {
	g := UniformGrid(0.5, 0.25, 5)
	RequireSliceEqual(t, g, []float64{0.5, 0.75, 1, 1.25, 1.5})
}

func TestPerturbCopies(t *testing.T) {
	g := []float64{1, 2, 3}
	p := Perturb(g, 1, 0.5)

	if g[1] != 2 {
		t.Fatalf("Perturb mutated its input: %v", g)
	}

	if p[1] != 2.5 {
		t.Fatalf("Perturb = %v, want sample 1 at 2.5", p)
	}
}

func TestDeterministicSpectrum(t *testing.T) {
	a := DeterministicSpectrum(7, 2, 32)
	b := DeterministicSpectrum(7, 2, 32)
	RequireSliceEqual(t, a, b)

	if a[0] != 0 {
		t.Fatalf("first sample = %v, want 0", a[0])
	}

	for i, v := range a {
		if v < 0 || v >= 2 {
			t.Fatalf("index %d: %v outside [0,2)", i, v)
		}
	}
}
