package main

import (
	"math/rand/v2"
	"time"
)

// runBench times each operation over n shuffled keys on a fresh tree.
// Scenarios run sequentially so timings don't contend for cores.
func runBench(n int) {
	var (
		r    = rand.New(rand.NewPCG(seed, 0))
		tree = newTree()
	)

	items := make([]*item, n)
	for i := range n {
		items[i] = &item{key: i}
	}
	shuffleItems(r, items)

	report("insert", n, func() {
		for _, it := range items {
			tree.Insert(it)
		}
	})

	keys := r.Perm(n)
	report("search", n, func() {
		for _, k := range keys {
			tree.Search(&item{key: k})
		}
	})

	keys = r.Perm(n)
	report("delete", n, func() {
		for _, k := range keys {
			if got := tree.Delete(&item{key: k}); got == nil || got.key != k {
				log.Fatalf("delete returned %v, want key %d", got, k)
			}
		}
	})

	shuffleItems(r, items)
	for _, it := range items {
		tree.Insert(it)
	}
	report("delete-first", n, func() {
		for range n {
			tree.DeleteFirst()
		}
	})

	shuffleItems(r, items)
	for _, it := range items {
		if tree.Insert(it) != nil {
			log.Fatal("insert replaced an existing record")
		}
	}
	report("delete-last", n, func() {
		for i := range n {
			if got := tree.DeleteLast(); got.key != n-i-1 {
				log.Fatalf("delete-last returned key %d, want %d", got.key, n-i-1)
			}
		}
	})
}

func report(name string, n int, run func()) {
	start := time.Now()
	run()
	elapsed := time.Since(start).Seconds()
	log.Infof("%-13s %d items in %.2f secs, %.2f ns/op, %.0f/sec",
		name+":", n, elapsed, elapsed*1e9/float64(n), float64(n)/elapsed)
}

func shuffleItems(r *rand.Rand, items []*item) {
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
