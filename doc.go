// Package hyperlsh provides approximate nearest-neighbor retrieval over
// high-dimensional vectors using locality-sensitive hashing via random
// hyperplane projection.
//
// A HyperIndex partitions space with random hyperplanes and groups keys by
// which side of each hyperplane their vector falls on; a group query
// returns the keys sharing the query's region in O(planes * dimension)
// time. A MultiIndex runs several independent HyperIndexes and merges
// their candidate buckets into a ranked, distance-ordered top-k result,
// trading speed and memory for recall.
//
// The index stores keys and hash codes only, never vectors; the distance
// metric is supplied by the caller at query time, so any vector store and
// any metric can sit behind it.
//
// # Quick Start
//
//	src := rand.NewSource(42) // golang.org/x/exp/rand
//
//	// 300-dim vectors, 15 sub-indices, 10 hyperplanes each.
//	mi, err := hyperlsh.NewMultiIndex[string](300, 15, 10, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for word, vec := range embeddings {
//	    if err := mi.Add(word, vec); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	nearest, err := mi.Nearest(query, 10, func(q []float32, word string) float32 {
//	    return distance.Euclidean(q, embeddings[word])
//	})
//
// # Accuracy
//
// Retrieval is approximate by design: neighbors falling just across a
// hyperplane may be missed, and no error bound is guaranteed. Accuracy is
// tuned statistically via the plane count (smaller buckets, faster, less
// recall), the sub-index count (more candidates, slower, more recall) and
// the WithMultiProbe option. TunePlaneCount helps pick a plane count for
// a target bucket size.
//
// # Concurrency
//
// Indexes perform no background work. Add mutates the bucket maps and
// requires external mutual exclusion; queries with no Add in flight are
// safe to run in parallel. WithConcurrency only parallelizes work inside
// a single call and does not change this contract.
package hyperlsh
