package distance

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/blas/blas32"
)

// Func is a function type for distance calculation between two vectors.
type Func func(a, b []float32) float32

func asVector(s []float32) blas32.Vector {
	return blas32.Vector{N: len(s), Inc: 1, Data: s}
}

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	return blas32.Dot(asVector(a), asVector(b))
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(sum)
}

// Euclidean calculates the L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float32) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// ModifiedCosine returns the cosine distance of two unit vectors offset
// from the [-1, 1] range into [0, 2]: identical directions score 0,
// opposite directions score 2. Inputs are expected to be L2-normalized.
func ModifiedCosine(a, b []float32) float32 {
	d := 2 - (Dot(a, b) + 1)
	if d < 0 {
		return 0
	}
	return d
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v is empty or has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm := blas32.Nrm2(asVector(v))
	if norm == 0 {
		return false
	}
	blas32.Scal(1/norm, asVector(v))
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src is empty or has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}
