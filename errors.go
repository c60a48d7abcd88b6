package hyperlsh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")
)

// ErrDimensionMismatch indicates a vector whose length differs from the
// configured dimension, on add or on any query.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d, must be positive", e.Dimension)
}

// ErrInvalidPlaneCount indicates an invalid configured hyperplane count.
type ErrInvalidPlaneCount struct {
	Count int
}

func (e *ErrInvalidPlaneCount) Error() string {
	return fmt.Sprintf("invalid plane count: %d, must not be negative", e.Count)
}

// ErrInvalidIndexCount indicates a MultiIndex configured without any
// sub-indices.
type ErrInvalidIndexCount struct {
	Count int
}

func (e *ErrInvalidIndexCount) Error() string {
	return fmt.Sprintf("invalid index count: %d, must be positive", e.Count)
}
