package hyperlsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/hupe1980/hyperlsh/randvec"
)

func TestTunePlaneCount(t *testing.T) {
	src := rand.NewSource(42)
	vectors := randvec.Units(512, 8, src)

	planes, err := TunePlaneCount(8, 10, vectors, src)
	require.NoError(t, err)

	// 512 samples over at most 2^4 codes average well above 10 at the
	// starting guess of 4 planes, so the best seen count is at least 4;
	// buckets thin out to below the target long before 32.
	assert.GreaterOrEqual(t, planes, 4)
	assert.LessOrEqual(t, planes, 32)
}

func TestTunePlaneCountInvalidInput(t *testing.T) {
	src := rand.NewSource(1)

	_, err := TunePlaneCount(8, 10, nil, src)
	assert.Error(t, err)

	_, err = TunePlaneCount(8, 0.5, randvec.Units(10, 8, src), src)
	assert.Error(t, err)

	// Sample vector with the wrong dimension surfaces as a mismatch.
	_, err = TunePlaneCount(8, 2, [][]float32{{1, 2}}, src)
	var mismatch *ErrDimensionMismatch
	assert.ErrorAs(t, err, &mismatch)
}
