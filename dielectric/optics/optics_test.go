package optics

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-optics/internal/testutil"
)

func TestFromDielectricRecoversIndex(t *testing.T) {
	// ε = (n + ik)² for known n, k.
	ns := []float64{1, 1.5, 2.4, 3.9, 0.2}
	ks := []float64{0, 0.01, 0.5, 2, 4}

	energy := testutil.UniformGrid(1, 0.5, len(ns))
	eps1 := make([]float64, len(ns))
	eps2 := make([]float64, len(ns))
	for i := range ns {
		eps1[i] = ns[i]*ns[i] - ks[i]*ks[i]
		eps2[i] = 2 * ns[i] * ks[i]
	}

	c, err := FromDielectric(energy, eps1, eps2)
	if err != nil {
		t.Fatalf("FromDielectric error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, c.N, ns, 1e-12)
	testutil.RequireSliceNearlyEqual(t, c.K, ks, 1e-12)
	testutil.RequireFinite(t, c.Absorption)
	testutil.RequireFinite(t, c.Reflectivity)
}

func TestFromDielectricVacuum(t *testing.T) {
	energy := testutil.UniformGrid(1, 1, 4)

	c, err := FromDielectric(energy, testutil.UniformGrid(1, 0, 4), testutil.Zeros(4))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireConstant(t, c.N, 0, 4, 1)
	testutil.RequireConstant(t, c.K, 0, 4, 0)
	testutil.RequireConstant(t, c.Absorption, 0, 4, 0)
	testutil.RequireConstant(t, c.Reflectivity, 0, 4, 0)
}

func TestFromDielectricMetallic(t *testing.T) {
	// Strongly negative ε1 with negligible ε2: n -> 0, k -> sqrt(-ε1).
	c, err := FromDielectric([]float64{1}, []float64{-9}, []float64{1e-300})
	if err != nil {
		t.Fatal(err)
	}

	if math.IsNaN(c.N[0]) || c.N[0] > 1e-6 {
		t.Fatalf("n = %v, want ~0", c.N[0])
	}

	if math.Abs(c.K[0]-3) > 1e-12 {
		t.Fatalf("k = %v, want 3", c.K[0])
	}

	if math.Abs(c.Reflectivity[0]-1) > 1e-6 {
		t.Fatalf("R = %v, want ~1", c.Reflectivity[0])
	}
}

func TestAbsorption(t *testing.T) {
	// k = 1 at λ = 1 µm (E = HC/1e-4 eV) gives α = 4π·1e4 1/cm.
	e := HC / 1e-4
	if got, want := Absorption(1, e), 4*math.Pi*1e4; math.Abs(got-want) > 1e-6 {
		t.Fatalf("Absorption = %v, want %v", got, want)
	}
}

func TestReflectivity(t *testing.T) {
	// Glass-like n = 1.5: R = 0.04.
	if got := Reflectivity(1.5, 0); math.Abs(got-0.04) > 1e-15 {
		t.Fatalf("Reflectivity(1.5, 0) = %v, want 0.04", got)
	}
}

func TestFromDielectricErrors(t *testing.T) {
	if _, err := FromDielectric(nil, nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}

	if _, err := FromDielectric([]float64{1, 2}, []float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}
