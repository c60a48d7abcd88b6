package hyperlsh

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/rand"
)

const maxTunePlaneCount = 255

// TunePlaneCount searches for the smallest plane count whose average
// bucket size over the sample vectors stays just above targetGroupSize.
// It walks plane counts upward from a log2-based guess, building a
// throwaway HyperIndex per step, and returns as soon as the average
// bucket size drops below the target. Cost grows with len(vectors); pass
// a representative sample rather than a full dataset.
//
// targetGroupSize must be at least 1 and vectors must be non-empty; every
// sample vector must have the given dimension.
func TunePlaneCount(dimension int, targetGroupSize float64, vectors [][]float32, src rand.Source, optFns ...Option) (int, error) {
	opts := applyOptions(optFns)

	if len(vectors) == 0 {
		return 0, fmt.Errorf("tune plane count: no sample vectors")
	}
	if targetGroupSize < 1 {
		return 0, fmt.Errorf("tune plane count: target group size %g must be at least 1", targetGroupSize)
	}

	// Initial guess: log2(samples) - log2(target). This underestimates
	// when the points are grouped up, so bias down a little further.
	initial := (bits.Len(uint(len(vectors))) - 1) - int(math.Floor(math.Log2(targetGroupSize)))
	initial = min(max(initial, 2), maxTunePlaneCount) - 2

	bestPlanes := 0
	bestAvg := math.MaxFloat64
	for planes := initial; planes <= maxTunePlaneCount; planes++ {
		idx, err := NewHyperIndex[int](dimension, planes, src)
		if err != nil {
			return 0, err
		}
		for n, v := range vectors {
			if err := idx.add(n, v); err != nil {
				return 0, err
			}
		}

		avg := idx.Stats().Avg
		opts.logger.Debug("tune step", "planes", planes, "avg_group_size", avg)

		// Track the smallest average still above the target.
		if avg < bestAvg && avg > targetGroupSize {
			bestAvg = avg
			bestPlanes = planes
		}

		if avg < targetGroupSize {
			return bestPlanes, nil
		}
	}

	return bestPlanes, nil
}
