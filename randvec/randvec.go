package randvec

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/hyperlsh/distance"
)

// Unit returns a vector of the given dimension drawn uniformly from the
// unit hypersphere: standard-normal components, L2-normalized. src may be
// nil, in which case the global source is used; pass a seeded source for
// reproducible draws.
//
// A dimension of 0 yields an empty vector.
func Unit(dimension int, src rand.Source) []float32 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	v := make([]float32, dimension)
	if dimension == 0 {
		return v
	}

	// A zero-norm draw is possible only through float underflow; redraw.
	for {
		for i := range v {
			v[i] = float32(normal.Rand())
		}
		if distance.NormalizeL2InPlace(v) {
			return v
		}
	}
}

// Units returns n independent unit vectors of the given dimension drawn
// from src.
func Units(n, dimension int, src rand.Source) [][]float32 {
	vectors := make([][]float32, n)
	for i := range vectors {
		vectors[i] = Unit(dimension, src)
	}
	return vectors
}
