package hyperlsh

import (
	"slices"

	"golang.org/x/exp/rand"

	"github.com/hupe1980/hyperlsh/bitvec"
	"github.com/hupe1980/hyperlsh/distance"
	"github.com/hupe1980/hyperlsh/randvec"
)

// Hasher maps vectors to fixed-length bit codes via sign tests against a
// fixed set of random unit-normal hyperplanes: bit i is 1 exactly when
// the dot product with hyperplane i's normal is non-negative. Vectors on
// the same side of every hyperplane share a code.
//
// The hyperplane set is fixed at construction and never regenerated, so
// Hash is deterministic for the Hasher's lifetime.
type Hasher struct {
	dimension int
	planes    [][]float32
}

// NewHasher creates a Hasher with planeCount random unit-normal
// hyperplanes in dimension-space drawn from src. src may be nil, in which
// case the global source is used; pass a seeded source for reproducible
// hyperplanes.
//
// A planeCount of 0 is a valid degenerate configuration: every vector
// hashes to the single empty code.
func NewHasher(dimension, planeCount int, src rand.Source) (*Hasher, error) {
	if dimension < 1 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	if planeCount < 0 {
		return nil, &ErrInvalidPlaneCount{Count: planeCount}
	}
	return &Hasher{
		dimension: dimension,
		planes:    randvec.Units(planeCount, dimension, src),
	}, nil
}

// NewHasherFromPlanes creates a Hasher over caller-supplied hyperplane
// normals. Every plane must have the given dimension. Useful for
// reproducible deployments and tests; normals are copied, not aliased.
func NewHasherFromPlanes(dimension int, planes [][]float32) (*Hasher, error) {
	if dimension < 1 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	cloned := make([][]float32, len(planes))
	for i, p := range planes {
		if len(p) != dimension {
			return nil, &ErrDimensionMismatch{Expected: dimension, Actual: len(p)}
		}
		cloned[i] = slices.Clone(p)
	}
	return &Hasher{
		dimension: dimension,
		planes:    cloned,
	}, nil
}

// Hash computes the bit code of v.
func (h *Hasher) Hash(v []float32) (*bitvec.BitVec, error) {
	if len(v) != h.dimension {
		return nil, &ErrDimensionMismatch{Expected: h.dimension, Actual: len(v)}
	}

	code := bitvec.New(len(h.planes))
	for i, plane := range h.planes {
		if distance.Dot(plane, v) >= 0 {
			code.Set(i)
		}
	}

	return code, nil
}

// Dimensions returns the vector dimension the Hasher accepts.
func (h *Hasher) Dimensions() int { return h.dimension }

// Planes returns the number of hyperplanes.
func (h *Hasher) Planes() int { return len(h.planes) }
