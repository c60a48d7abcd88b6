package hyperlsh

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// DistanceFunc scores a candidate key against the query vector. Looking
// up the vector behind the key is the caller's responsibility, typically
// via a closure over the caller's vector store.
type DistanceFunc[K comparable] func(query []float32, key K) float32

// DistanceNode is a scored candidate returned by MultiIndex.Nearest.
type DistanceNode[K comparable] struct {
	Key      K
	Distance float32
}

// MultiIndex is an ensemble of independent HyperIndexes sharing the same
// dimension and plane count, each with its own randomly drawn hyperplane
// set. It trades add cost and memory for recall: a neighbor split away
// from the query by one sub-index's hyperplanes is likely to share a
// bucket in another.
//
// The concurrency contract matches HyperIndex: Add requires external
// mutual exclusion, queries with no Add in flight may run in parallel.
type MultiIndex[K comparable] struct {
	dimension int
	indices   []*HyperIndex[K]
	opts      options
}

// NewMultiIndex creates a MultiIndex of indexCount HyperIndexes with
// planeCount hyperplanes each, all drawn from src.
func NewMultiIndex[K comparable](dimension, indexCount, planeCount int, src rand.Source, optFns ...Option) (*MultiIndex[K], error) {
	if indexCount < 1 {
		return nil, &ErrInvalidIndexCount{Count: indexCount}
	}

	indices := make([]*HyperIndex[K], indexCount)
	for n := range indices {
		idx, err := NewHyperIndex[K](dimension, planeCount, src)
		if err != nil {
			return nil, err
		}
		indices[n] = idx
	}

	return &MultiIndex[K]{
		dimension: dimension,
		indices:   indices,
		opts:      applyOptions(optFns),
	}, nil
}

// Add inserts key into every sub-index. The dimension is validated once
// up front, so a mismatch fails before any sub-index is touched and the
// key is never partially inserted.
func (m *MultiIndex[K]) Add(key K, vector []float32) error {
	start := time.Now()
	err := m.add(key, vector)
	m.opts.metricsCollector.RecordAdd(time.Since(start), err)
	m.opts.logger.LogAdd(len(vector), err)
	return err
}

func (m *MultiIndex[K]) add(key K, vector []float32) error {
	if len(vector) != m.dimension {
		return &ErrDimensionMismatch{Expected: m.dimension, Actual: len(vector)}
	}

	if m.opts.concurrency > 1 {
		g := new(errgroup.Group)
		g.SetLimit(m.opts.concurrency)
		for _, idx := range m.indices {
			idx := idx
			g.Go(func() error {
				return idx.add(key, vector)
			})
		}
		return g.Wait()
	}

	for _, idx := range m.indices {
		if err := idx.add(key, vector); err != nil {
			return err
		}
	}

	return nil
}

// Candidates returns the deduplicated union of the buckets matching query
// across all sub-indices, in first-seen order: sub-index order, then
// bucket insertion order. A key appearing in several matched buckets
// appears once. Sub-indices without a matching bucket contribute nothing.
func (m *MultiIndex[K]) Candidates(query []float32) ([]K, error) {
	if len(query) != m.dimension {
		return nil, &ErrDimensionMismatch{Expected: m.dimension, Actual: len(query)}
	}

	seen := make(map[K]struct{})
	var out []K
	collect := func(keys []K) {
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	for _, idx := range m.indices {
		code, err := idx.Code(query)
		if err != nil {
			return nil, err
		}

		if keys, ok := idx.GroupByCode(code); ok {
			collect(keys)
		}

		if !m.opts.multiProbe {
			continue
		}
		for bit := 0; bit < code.Len(); bit++ {
			code.Flip(bit)
			if keys, ok := idx.GroupByCode(code); ok {
				collect(keys)
			}
			code.Flip(bit)
		}
	}

	return out, nil
}

// Nearest returns the k candidates closest to query as scored by distFn,
// ascending by distance. Every unique candidate key is scored exactly
// once, no matter how many matched buckets contain it. Equal distances
// keep the candidate collection order (stable sort), so results are
// reproducible for identical construction and insertion sequences.
//
// Fewer than k candidates yields all of them; a k of 0 yields an empty
// result without invoking distFn. An empty result is a normal outcome,
// not an error.
func (m *MultiIndex[K]) Nearest(query []float32, k int, distFn DistanceFunc[K]) ([]DistanceNode[K], error) {
	start := time.Now()
	nodes, candidates, err := m.nearest(query, k, distFn)
	m.opts.metricsCollector.RecordNearest(k, candidates, time.Since(start), err)
	m.opts.logger.LogNearest(k, candidates, len(nodes), err)
	return nodes, err
}

func (m *MultiIndex[K]) nearest(query []float32, k int, distFn DistanceFunc[K]) ([]DistanceNode[K], int, error) {
	if k < 0 {
		return nil, 0, ErrInvalidK
	}

	candidates, err := m.Candidates(query)
	if err != nil {
		return nil, 0, err
	}

	if k == 0 || len(candidates) == 0 {
		return []DistanceNode[K]{}, len(candidates), nil
	}

	nodes := make([]DistanceNode[K], len(candidates))
	if m.opts.concurrency > 1 {
		g := new(errgroup.Group)
		g.SetLimit(m.opts.concurrency)
		for n, key := range candidates {
			n, key := n, key
			g.Go(func() error {
				nodes[n] = DistanceNode[K]{Key: key, Distance: distFn(query, key)}
				return nil
			})
		}
		// Scoring itself cannot fail; Wait only synchronizes.
		_ = g.Wait()
	} else {
		for n, key := range candidates {
			nodes[n] = DistanceNode[K]{Key: key, Distance: distFn(query, key)}
		}
	}

	sort.SliceStable(nodes, func(a, b int) bool {
		return nodes[a].Distance < nodes[b].Distance
	})

	if len(nodes) > k {
		nodes = nodes[:k:k]
	}

	return nodes, len(candidates), nil
}

// Dimensions returns the vector dimension the index accepts.
func (m *MultiIndex[K]) Dimensions() int { return m.dimension }

// Planes returns the per-sub-index hyperplane count.
func (m *MultiIndex[K]) Planes() int { return m.indices[0].Planes() }

// Indices returns the number of sub-indices.
func (m *MultiIndex[K]) Indices() int { return len(m.indices) }

// Len returns the total number of inserted keys.
func (m *MultiIndex[K]) Len() int { return m.indices[0].Len() }
