package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-optics/internal/testutil"
)

func TestValidateUniform(t *testing.T) {
	energy := testutil.UniformGrid(0.5, 0.01, 200)

	g, err := Validate(energy, 1e-3)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	if g.Len != 200 || g.Start != 0.5 {
		t.Fatalf("unexpected grid %+v", g)
	}

	if math.Abs(g.Step-0.01) > 1e-12 {
		t.Fatalf("step = %v, want 0.01", g.Step)
	}

	if math.Abs(g.End()-energy[199]) > 1e-9 {
		t.Fatalf("End() = %v, want %v", g.End(), energy[199])
	}
}

func TestValidateIrregularStep(t *testing.T) {
	_, err := Validate([]float64{1, 2, 3, 4.5, 5}, 1e-3)
	if !errors.Is(err, ErrNonUniformGrid) {
		t.Fatalf("expected ErrNonUniformGrid, got %v", err)
	}

	var se *SpacingError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SpacingError, got %T", err)
	}

	if se.Index != 3 {
		t.Fatalf("offending index = %d, want 3", se.Index)
	}
}

func TestValidateToleranceBoundary(t *testing.T) {
	base := testutil.UniformGrid(1, 1, 6)

	tests := []struct {
		name    string
		offset  float64
		wantErr bool
	}{
		{"within", 5e-4, false},
		{"beyond", 5e-3, true},
		{"negative beyond", -5e-3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(testutil.Perturb(base, 4, tt.offset), 1e-3)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	energy := []float64{0, 1, 2, 3.5, 4, 6}

	var se *SpacingError
	if _, err := Validate(energy, 1e-3); !errors.As(err, &se) {
		t.Fatalf("expected *SpacingError, got %v", err)
	}

	if se.Index != 3 {
		t.Fatalf("offending index = %d, want 3", se.Index)
	}
}

func TestValidateGuards(t *testing.T) {
	tests := []struct {
		name   string
		energy []float64
		tol    float64
		want   error
	}{
		{"too short", []float64{1, 2}, 1e-3, ErrTooShort},
		{"empty", nil, 1e-3, ErrTooShort},
		{"decreasing", []float64{3, 2, 1}, 1e-3, ErrNotIncreasing},
		{"flat", []float64{1, 1, 1}, 1e-3, ErrNotIncreasing},
		{"negative tol", []float64{1, 2, 3}, -1, ErrInvalidTolerance},
		{"nan tol", []float64{1, 2, 3}, math.NaN(), ErrInvalidTolerance},
		{"later step negative within tol", []float64{0, 5e-4, 1e-3, 6e-4}, 1e-3, ErrNotIncreasing},
		{"later step zero within tol", []float64{0, 5e-4, 1e-3, 1e-3}, 1e-3, ErrNotIncreasing},
		{"nan sample", []float64{1, 2, 3, math.NaN(), 5}, 1e-3, ErrNonUniformGrid},
		{"inf sample", []float64{1, 2, 3, math.Inf(1)}, 1e-3, ErrNonUniformGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Validate(tt.energy, tt.tol); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateNaNSampleNamesIndex(t *testing.T) {
	energy := testutil.UniformGrid(1, 0.01, 10)
	energy[4] = math.NaN()

	_, err := Validate(energy, 1e-3)

	var se *SpacingError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SpacingError", err)
	}

	if se.Index != 4 {
		t.Fatalf("Index = %d, want 4", se.Index)
	}
}

func TestShiftIndex(t *testing.T) {
	g := Grid{Start: 0, Step: 0.1, Len: 100}

	tests := []struct {
		delta float64
		want  int
	}{
		{0, 0},
		{0.3, 3},
		{-0.3, -3},
		{0.26, 3},
		{0.24, 2},
		{-0.26, -3},
	}

	for _, tt := range tests {
		if got := g.ShiftIndex(tt.delta); got != tt.want {
			t.Fatalf("ShiftIndex(%v) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestShiftIndexHalfStepRoundsToEven(t *testing.T) {
	g := Grid{Start: 0, Step: 1, Len: 10}

	tests := []struct {
		delta float64
		want  int
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{-0.5, 0},
		{-1.5, -2},
	}

	for _, tt := range tests {
		if got := g.ShiftIndex(tt.delta); got != tt.want {
			t.Fatalf("ShiftIndex(%v) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}
