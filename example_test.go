package hyperlsh_test

import (
	"fmt"
	"log"

	"golang.org/x/exp/rand"

	"github.com/hupe1980/hyperlsh"
	"github.com/hupe1980/hyperlsh/distance"
)

// Example_group demonstrates a single-hasher index. With a plane count of
// 0 every vector shares one bucket, which keeps the output deterministic.
func Example_group() {
	idx, err := hyperlsh.NewHyperIndex[string](2, 0, rand.NewSource(42))
	if err != nil {
		log.Fatal(err)
	}

	_ = idx.Add("a", []float32{1, 0})
	_ = idx.Add("b", []float32{0, 1})

	keys, ok, err := idx.Group([]float32{0.5, 0.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok, keys)
	// Output: true [a b]
}

// Example_nearest demonstrates ranked retrieval from an aggregate index.
// The caller owns the vectors; the index only sees keys and a distance
// function closing over the vector store.
func Example_nearest() {
	vectors := map[string][]float32{
		"a": {1, 0},
		"b": {0, 2},
		"c": {3, 0},
	}

	mi, err := hyperlsh.NewMultiIndex[string](2, 3, 0, rand.NewSource(42))
	if err != nil {
		log.Fatal(err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := mi.Add(key, vectors[key]); err != nil {
			log.Fatal(err)
		}
	}

	nodes, err := mi.Nearest([]float32{0, 0}, 2, func(query []float32, key string) float32 {
		return distance.Euclidean(query, vectors[key])
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range nodes {
		fmt.Printf("%s %.2f\n", n.Key, n.Distance)
	}
	// Output:
	// a 1.00
	// b 2.00
}
