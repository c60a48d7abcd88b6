package hyperlsh

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/hyperlsh/bitvec"
)

// HyperIndex is a single-hasher LSH index: keys are grouped into buckets
// by the hash code of their vectors, and a group query returns the bucket
// matching the query's code in O(planes * dimension) time. A query may
// omit true near neighbors that fall on the far side of a hyperplane;
// that imprecision is inherent to the structure, not a defect.
//
// The index is append-only and stores only keys and codes, never the
// vectors themselves. Add requires external mutual exclusion; queries
// with no Add in flight are safe to run in parallel.
type HyperIndex[K comparable] struct {
	hasher *Hasher
	groups map[string][]K
	size   int
	opts   options
}

// NewHyperIndex creates a HyperIndex with planeCount random hyperplanes
// in dimension-space drawn from src.
func NewHyperIndex[K comparable](dimension, planeCount int, src rand.Source, optFns ...Option) (*HyperIndex[K], error) {
	hasher, err := NewHasher(dimension, planeCount, src)
	if err != nil {
		return nil, err
	}
	return NewHyperIndexWithHasher[K](hasher, optFns...)
}

// NewHyperIndexWithHasher creates a HyperIndex over an existing Hasher.
func NewHyperIndexWithHasher[K comparable](hasher *Hasher, optFns ...Option) (*HyperIndex[K], error) {
	if hasher == nil {
		return nil, errors.New("hasher must not be nil")
	}
	return &HyperIndex[K]{
		hasher: hasher,
		groups: make(map[string][]K),
		opts:   applyOptions(optFns),
	}, nil
}

// Add appends key to the bucket for vector's hash code, creating the
// bucket on first use. The vector itself is not retained.
func (i *HyperIndex[K]) Add(key K, vector []float32) error {
	start := time.Now()
	err := i.add(key, vector)
	i.opts.metricsCollector.RecordAdd(time.Since(start), err)
	i.opts.logger.LogAdd(len(vector), err)
	return err
}

func (i *HyperIndex[K]) add(key K, vector []float32) error {
	code, err := i.hasher.Hash(vector)
	if err != nil {
		return err
	}

	k := code.Key()
	i.groups[k] = append(i.groups[k], key)
	i.size++

	return nil
}

// Group returns the bucket matching query's hash code. The bool reports
// whether a bucket exists; a missing bucket is a normal outcome of the
// probabilistic structure, not an error. The returned slice is the live
// bucket in insertion order; callers must not modify it.
func (i *HyperIndex[K]) Group(query []float32) ([]K, bool, error) {
	start := time.Now()

	code, err := i.hasher.Hash(query)
	if err != nil {
		i.opts.metricsCollector.RecordGroup(false, time.Since(start))
		i.opts.logger.LogGroup(false, 0, err)
		return nil, false, err
	}

	keys, ok := i.GroupByCode(code)
	i.opts.metricsCollector.RecordGroup(ok, time.Since(start))
	i.opts.logger.LogGroup(ok, len(keys), nil)

	return keys, ok, nil
}

// GroupByCode returns the bucket for a precomputed hash code.
func (i *HyperIndex[K]) GroupByCode(code *bitvec.BitVec) ([]K, bool) {
	keys, ok := i.groups[code.Key()]
	return keys, ok
}

// Code returns the hash code the index assigns to v.
func (i *HyperIndex[K]) Code(v []float32) (*bitvec.BitVec, error) {
	return i.hasher.Hash(v)
}

// Dimensions returns the vector dimension the index accepts.
func (i *HyperIndex[K]) Dimensions() int { return i.hasher.Dimensions() }

// Planes returns the number of hyperplanes.
func (i *HyperIndex[K]) Planes() int { return i.hasher.Planes() }

// Groups returns the number of buckets.
func (i *HyperIndex[K]) Groups() int { return len(i.groups) }

// Len returns the total number of inserted keys.
func (i *HyperIndex[K]) Len() int { return i.size }

// GroupStats summarizes the bucket sizes of a HyperIndex.
type GroupStats struct {
	Min int
	Max int
	Avg float64
}

// Stats returns the minimum, average and maximum bucket size. All fields
// are zero on an empty index.
func (i *HyperIndex[K]) Stats() GroupStats {
	if len(i.groups) == 0 {
		return GroupStats{}
	}

	s := GroupStats{Min: math.MaxInt}
	sizes := make([]float64, 0, len(i.groups))
	for _, keys := range i.groups {
		n := len(keys)
		if n < s.Min {
			s.Min = n
		}
		if n > s.Max {
			s.Max = n
		}
		sizes = append(sizes, float64(n))
	}
	s.Avg = stat.Mean(sizes, nil)

	return s
}
