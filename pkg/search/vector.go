package search

import (
	"math"
	"math/rand"
)

// NormalizeL2 scales the vector to unit length in place and returns it.
// A zero vector is returned unchanged.
func NormalizeL2(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
	return v
}

// RandomUnitVector produces a normalized random vector. Used as the
// availability fallback when the embedding service is down.
func RandomUnitVector(dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = float32(rand.NormFloat64())
	}
	return NormalizeL2(v)
}

// Combine builds the weighted sum of two unit vectors and renormalizes.
// Both inputs must already be L2-normalized and of equal length.
func Combine(a, b []float32, weightA, weightB float64) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = float32(weightA)*a[i] + float32(weightB)*b[i]
	}
	return NormalizeL2(out)
}

// normalize min-max scales the values into [0,1]. The epsilon keeps a
// zero-range array from dividing by zero.
func normalize(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	mn, mx := x[0], x[0]
	for _, v := range x {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - mn) / (mx - mn + 1e-8)
	}
	return out
}
