package hyperlsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(300, 10, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 300, h.Dimensions())
	assert.Equal(t, 10, h.Planes())
}

func TestNewHasherInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		dimension  int
		planeCount int
	}{
		{"ZeroDimension", 0, 10},
		{"NegativeDimension", -3, 10},
		{"NegativePlaneCount", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHasher(tt.dimension, tt.planeCount, rand.NewSource(1))
			require.Error(t, err)

			if tt.dimension < 1 {
				var invalidDim *ErrInvalidDimension
				require.ErrorAs(t, err, &invalidDim)
				assert.Equal(t, tt.dimension, invalidDim.Dimension)
			} else {
				var invalidPlanes *ErrInvalidPlaneCount
				require.ErrorAs(t, err, &invalidPlanes)
				assert.Equal(t, tt.planeCount, invalidPlanes.Count)
			}
		})
	}
}

func TestNewHasherFromPlanes(t *testing.T) {
	h, err := NewHasherFromPlanes(2, [][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Dimensions())
	assert.Equal(t, 2, h.Planes())

	_, err = NewHasherFromPlanes(2, [][]float32{{1, 0, 0}})
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Actual)

	_, err = NewHasherFromPlanes(0, nil)
	assert.Error(t, err)
}

func TestNewHasherFromPlanesCopiesNormals(t *testing.T) {
	plane := []float32{1, 0}
	h, err := NewHasherFromPlanes(2, [][]float32{plane})
	require.NoError(t, err)

	before, err := h.Hash([]float32{2, 0})
	require.NoError(t, err)
	require.True(t, before.Test(0))

	// Mutating the caller's slice must not change the hasher.
	plane[0] = -1
	after, err := h.Hash([]float32{2, 0})
	require.NoError(t, err)
	assert.True(t, after.Test(0))
}

func TestHashSignRule(t *testing.T) {
	// Single fixed hyperplane with normal (1, 0): bit 0 reflects the sign
	// of the x coordinate, with 0 counting as positive.
	h, err := NewHasherFromPlanes(2, [][]float32{{1, 0}})
	require.NoError(t, err)

	tests := []struct {
		name   string
		vector []float32
		set    bool
	}{
		{"Positive", []float32{1, 0}, true},
		{"Negative", []float32{-1, 0}, false},
		{"OffAxis", []float32{0.5, 5}, true},
		{"Boundary", []float32{0, 3}, true}, // dot == 0 counts as non-negative
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := h.Hash(tt.vector)
			require.NoError(t, err)
			require.Equal(t, 1, code.Len())
			assert.Equal(t, tt.set, code.Test(0))
		})
	}
}

func TestHashDeterminism(t *testing.T) {
	h, err := NewHasher(32, 16, rand.NewSource(42))
	require.NoError(t, err)

	v := make([]float32, 32)
	for i := range v {
		v[i] = float32(i) - 15.5
	}

	first, err := h.Hash(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		code, err := h.Hash(v)
		require.NoError(t, err)
		assert.True(t, first.Equal(code))
	}
}

func TestHashDimensionMismatch(t *testing.T) {
	h, err := NewHasher(4, 2, rand.NewSource(1))
	require.NoError(t, err)

	for _, bad := range [][]float32{nil, {1}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := h.Hash(bad)
		var mismatch *ErrDimensionMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 4, mismatch.Expected)
		assert.Equal(t, len(bad), mismatch.Actual)
	}
}

func TestHashZeroPlanes(t *testing.T) {
	h, err := NewHasher(3, 0, rand.NewSource(1))
	require.NoError(t, err)

	a, err := h.Hash([]float32{1, 2, 3})
	require.NoError(t, err)
	b, err := h.Hash([]float32{-9, 0, 4})
	require.NoError(t, err)

	assert.Equal(t, 0, a.Len())
	assert.True(t, a.Equal(b), "all vectors share the single empty code")
}

func TestHashersDrawIndependentPlanes(t *testing.T) {
	src := rand.NewSource(42)
	h1, err := NewHasher(16, 8, src)
	require.NoError(t, err)
	h2, err := NewHasher(16, 8, src)
	require.NoError(t, err)

	// Two hashers drawn from one source stream must disagree on at least
	// one of a handful of probe vectors.
	differs := false
	for _, v := range randvecProbe(8, 16) {
		c1, err := h1.Hash(v)
		require.NoError(t, err)
		c2, err := h2.Hash(v)
		require.NoError(t, err)
		if !c1.Equal(c2) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func randvecProbe(n, dim int) [][]float32 {
	src := rand.New(rand.NewSource(7))
	vectors := make([][]float32, n)
	for i := range vectors {
		v := make([]float32, dim)
		for j := range v {
			v[j] = float32(src.Float64()*2 - 1)
		}
		vectors[i] = v
	}
	return vectors
}
