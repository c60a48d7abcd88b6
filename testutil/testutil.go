package testutil

import (
	"sort"

	"github.com/hupe1980/hyperlsh/distance"
)

// Item pairs a key with its vector for reference searches.
type Item[K comparable] struct {
	Key    K
	Vector []float32
}

// SearchResult is a scored key produced by BruteForce.
type SearchResult[K comparable] struct {
	Key      K
	Distance float32
}

// BruteForce returns the exact k nearest items to query by linear scan,
// ascending by distance. Equal distances keep item order (stable sort).
// A negative k returns all items.
func BruteForce[K comparable](query []float32, items []Item[K], k int, dist distance.Func) []SearchResult[K] {
	results := make([]SearchResult[K], len(items))
	for i, it := range items {
		results[i] = SearchResult[K]{Key: it.Key, Distance: dist(query, it.Vector)}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if k >= 0 && len(results) > k {
		results = results[:k:k]
	}

	return results
}

// Recall returns the fraction of want's keys present in got. An empty
// want counts as full recall.
func Recall[K comparable](got, want []SearchResult[K]) float64 {
	if len(want) == 0 {
		return 1
	}

	seen := make(map[K]struct{}, len(got))
	for _, r := range got {
		seen[r.Key] = struct{}{}
	}

	hits := 0
	for _, r := range want {
		if _, ok := seen[r.Key]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(want))
}
