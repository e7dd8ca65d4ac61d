package search

import (
	"math"
	"testing"
)

func length(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalizeL2(t *testing.T) {
	v := NormalizeL2([]float32{3, 4})
	if math.Abs(length(v)-1) > 1e-6 {
		t.Errorf("normalized length = %f, want 1", length(v))
	}
	if math.Abs(float64(v[0])-0.6) > 1e-6 || math.Abs(float64(v[1])-0.8) > 1e-6 {
		t.Errorf("unexpected direction after normalization: %v", v)
	}

	zero := NormalizeL2([]float32{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("zero vector should pass through unchanged, got %v", zero)
	}
}

func TestRandomUnitVector(t *testing.T) {
	v := RandomUnitVector(128)
	if len(v) != 128 {
		t.Fatalf("dimension = %d, want 128", len(v))
	}
	if math.Abs(length(v)-1) > 1e-5 {
		t.Errorf("random vector length = %f, want 1", length(v))
	}
}

func TestCombineRenormalizes(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	c := Combine(a, b, 0.3, 0.7)
	if math.Abs(length(c)-1) > 1e-6 {
		t.Errorf("combined length = %f, want 1", length(c))
	}
	// The heavier modality must dominate the direction.
	if c[1] <= c[0] {
		t.Errorf("text weight 0.7 should dominate: %v", c)
	}

	// Degenerate weighting collapses onto one modality.
	textOnly := Combine(a, b, 0, 1)
	if math.Abs(float64(textOnly[1])-1) > 1e-6 {
		t.Errorf("weights (0,1) should reproduce b, got %v", textOnly)
	}
}

func TestNormalizeBounds(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{"spread", []float64{5, -2, 9, 0}},
		{"constant", []float64{3, 3, 3}},
		{"single", []float64{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := normalize(tt.in)
			for i, v := range out {
				if v < 0 || v > 1 {
					t.Errorf("normalize(%v)[%d] = %f out of [0,1]", tt.in, i, v)
				}
			}
		})
	}

	if got := normalize(nil); got != nil {
		t.Errorf("normalize(nil) = %v, want nil", got)
	}
}
