// Package distance provides vector distance calculations for LSH indexing
// and candidate scoring.
//
// Dot products and norms are backed by gonum's BLAS level-1 routines.
//
// # Supported metrics
//
//   - SquaredL2: squared Euclidean distance
//   - Euclidean: Euclidean distance
//   - ModifiedCosine: cosine distance shifted into [0, 2] for unit vectors
//
// # Usage
//
//	dist := distance.Euclidean(a, b)
//	sim := distance.Dot(a, b)
//	unit, ok := distance.NormalizeL2Copy(vec)
package distance
