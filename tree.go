/*
Package aatree implements an intrusive, allocation-free ordered container
on top of an AA tree (Arne Andersson, "Balanced search trees made simple",
1993). Per-node level numbers encode a 2-3 tree in binary links; two local
rotations, skew and split, do all the rebalancing.

The tree never allocates. Records are owned by the caller, who embeds a
[Hook] into the record type and hands the tree an accessor for it together
with a comparator:

	type item struct {
		hook aatree.Hook[item]
		key  int
	}

	tree := aatree.New(
		func(x, y *item) int { return x.key - y.key },
		func(it *item) *aatree.Hook[item] { return &it.hook },
	)

Keys are unique: inserting a record whose key matches one already in the
tree replaces it and hands the displaced record back to the caller.

Note: an individual tree is not thread safe, so either access only in a
single go routine or use mutex/rwmutex to restrict access.
*/
package aatree

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// A Hook holds the links that tie one record into a [Tree]. Embed one into
// the record type; its zero value is the detached state.
type Hook[T any] struct {
	left  *T
	right *T
	level int
}

// Detached reports whether the hook is in its zero state, i.e. the record
// is not threaded into a tree. Records must be detached before Insert and
// are returned detached by the delete operations.
func (h *Hook[T]) Detached() bool {
	return h.left == nil && h.right == nil && h.level == 0
}

// A CompareFunc defines a total order over records. It returns a negative
// value if x sorts before y, a positive value if after, and zero when the
// keys are equal. The probe argument of a lookup is always passed as x, so
// the function may be asymmetric if desired.
type CompareFunc[T any] func(x, y *T) int

// A HookFunc gives the tree access to the [Hook] embedded in a record.
type HookFunc[T any] func(*T) *Hook[T]

// A Tree is a set of caller-owned records ordered by a comparator. The
// zero-value-rooted state is the empty tree; create one with [New].
type Tree[T any] struct {
	root  *T
	cmp   CompareFunc[T]
	hook  HookFunc[T]
	count int
}

func New[T any](cmp CompareFunc[T], hook HookFunc[T]) *Tree[T] {
	return &Tree[T]{
		root: nil,
		cmp:  cmp,
		hook: hook,
	}
}

// Count - number of records currently in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// clear resets a record's hook to the detached state.
func (t *Tree[T]) clear(node *T) {
	if node != nil {
		h := t.hook(node)
		h.left = nil
		h.right = nil
		h.level = 0
	}
}
