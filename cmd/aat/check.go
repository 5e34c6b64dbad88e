package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

const checkSize = 1000

/*
runCheck runs the randomized self-test suites. Each suite owns its tree
and its generator, so they are independent and run concurrently. The
first failure cancels the shared context, but a suite checks it only
before it starts; a running suite always runs to completion.
*/
func runCheck(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	suites := []struct {
		name string
		run  func(*rand.Rand) error
	}{
		{"random-cycle", checkRandomCycle},
		{"endpoints", checkEndpoints},
		{"half-delete", checkHalfDelete},
		{"iterators", checkIterators},
	}
	for i, suite := range suites {
		r := rand.New(rand.NewPCG(seed, uint64(i)))
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			log.Info("running suite ", suite.name)
			if err := suite.run(r); err != nil {
				return fmt.Errorf("%s: %w", suite.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func makeItems(n int, key func(i int) int) []*item {
	items := make([]*item, n)
	for i := range n {
		items[i] = &item{key: key(i)}
	}
	return items
}

func checkRandomCycle(r *rand.Rand) error {
	var (
		n     = checkSize
		tree  = newTree()
		items = makeItems(n, func(i int) int { return i })
	)
	shuffleItems(r, items)
	for _, it := range items {
		if tree.Search(it) != nil {
			return fmt.Errorf("key %d found before insert", it.key)
		}
		if tree.Insert(it) != nil {
			return fmt.Errorf("insert of %d replaced a record", it.key)
		}
		if tree.Search(it) != it {
			return fmt.Errorf("key %d not found after insert", it.key)
		}
		if err := tree.Check(); err != nil {
			return err
		}
	}

	// every key answers, the fenceposts don't
	for i := range n {
		if got := tree.Search(&item{key: i}); got == nil || got.key != i {
			return fmt.Errorf("key %d missing", i)
		}
	}
	if tree.Search(&item{key: -1}) != nil || tree.Search(&item{key: n}) != nil {
		return fmt.Errorf("out-of-range key found")
	}

	for i := range n {
		if got := tree.Delete(&item{key: i}); got == nil || got.key != i {
			return fmt.Errorf("delete of %d returned wrong record", i)
		}
		if err := tree.Check(); err != nil {
			return err
		}
		if tree.Search(&item{key: i}) != nil {
			return fmt.Errorf("key %d found after delete", i)
		}
		if tree.Delete(&item{key: i}) != nil {
			return fmt.Errorf("second delete of %d returned a record", i)
		}
	}

	shuffleItems(r, items)
	for _, it := range items {
		if tree.Insert(it) != nil {
			return fmt.Errorf("reinsert of %d replaced a record", it.key)
		}
	}
	shuffleItems(r, items)
	for _, it := range items {
		if tree.Delete(it) != it {
			return fmt.Errorf("random delete of %d returned wrong record", it.key)
		}
		if err := tree.Check(); err != nil {
			return err
		}
	}
	if !tree.IsEmpty() {
		return fmt.Errorf("tree not empty after full delete cycle")
	}
	return nil
}

func checkEndpoints(r *rand.Rand) error {
	var (
		n     = checkSize
		tree  = newTree()
		items = makeItems(n, func(i int) int { return i })
	)
	shuffleItems(r, items)
	for _, it := range items {
		tree.Insert(it)
	}
	for i := range n {
		if tree.First().key != i {
			return fmt.Errorf("first is %d, want %d", tree.First().key, i)
		}
		if got := tree.DeleteFirst(); got.key != i {
			return fmt.Errorf("delete-first returned %d, want %d", got.key, i)
		}
		if err := tree.Check(); err != nil {
			return err
		}
	}

	shuffleItems(r, items)
	for _, it := range items {
		tree.Insert(it)
	}
	for i := range n {
		if tree.Last().key != n-i-1 {
			return fmt.Errorf("last is %d, want %d", tree.Last().key, n-i-1)
		}
		if got := tree.DeleteLast(); got.key != n-i-1 {
			return fmt.Errorf("delete-last returned %d, want %d", got.key, n-i-1)
		}
		if err := tree.Check(); err != nil {
			return err
		}
	}
	return nil
}

func checkHalfDelete(r *rand.Rand) error {
	var (
		n     = checkSize
		tree  = newTree()
		items = makeItems(n, func(i int) int { return i })
	)
	shuffleItems(r, items)
	for _, it := range items {
		tree.Insert(it)
	}

	keys := r.Perm(n)[:n/2]
	deleted := make([]*item, 0, n/2)
	for _, k := range keys {
		d := tree.Delete(&item{key: k})
		if d == nil || d.key != k {
			return fmt.Errorf("delete of %d returned wrong record", k)
		}
		if tree.Delete(&item{key: k}) != nil {
			return fmt.Errorf("second delete of %d returned a record", k)
		}
		if err := tree.Check(); err != nil {
			return err
		}
		deleted = append(deleted, d)
	}

	shuffleItems(r, deleted)
	for _, it := range deleted {
		if tree.Insert(it) != nil {
			return fmt.Errorf("reinsert of %d replaced a record", it.key)
		}
		if tree.Insert(it) != it {
			return fmt.Errorf("repeated insert of %d did not return the record", it.key)
		}
		if err := tree.Check(); err != nil {
			return err
		}
	}

	for i := range n {
		if got := tree.Search(&item{key: i}); got == nil || got.key != i {
			return fmt.Errorf("key %d missing after reinsert", i)
		}
	}
	return nil
}

func checkIterators(r *rand.Rand) error {
	var (
		n     = checkSize
		tree  = newTree()
		items = makeItems(n, func(i int) int { return i * 10 })
	)
	shuffleItems(r, items)
	for _, it := range items {
		tree.Insert(it)
		if err := tree.Check(); err != nil {
			return err
		}
	}

	for p := -9; p < n*10; p++ {
		iter := tree.Iter(&item{key: p})
		switch {
		case p < 0:
			if iter.key != 0 {
				return fmt.Errorf("iter(%d) = %d, want 0", p, iter.key)
			}
		case p > (n-1)*10:
			if iter != nil {
				return fmt.Errorf("iter(%d) = %d, want nil", p, iter.key)
			}
		default:
			want := p
			if p%10 != 0 {
				want = p/10*10 + 10
			}
			if iter == nil || iter.key != want {
				return fmt.Errorf("iter(%d) wrong, want %d", p, want)
			}
			for next := iter.key + 10; next < n*10; next += 10 {
				iter = tree.Next(iter)
				if iter == nil || iter.key != next {
					return fmt.Errorf("next after %d wrong, want %d", next-10, next)
				}
			}
			if tree.Next(iter) != nil {
				return fmt.Errorf("next past the maximum returned a record")
			}
		}
	}

	iter := tree.First()
	for i := 10; i < n*10; i += 10 {
		iter = tree.Next(iter)
		if iter == nil || iter.key != i {
			return fmt.Errorf("forward walk broke at %d", i)
		}
	}
	iter = tree.Last()
	for i := (n - 2) * 10; i >= 0; i -= 10 {
		iter = tree.Prev(iter)
		if iter == nil || iter.key != i {
			return fmt.Errorf("backward walk broke at %d", i)
		}
	}
	return nil
}
