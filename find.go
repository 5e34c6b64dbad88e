package aatree

// A Relation selects which record a FindRel lookup resolves to, relative
// to the probe key.
type Relation uint8

const (
	Eq Relation = iota
	Lt
	Le
	Gt
	Ge
)

/*
FindRel finds the record that stands in the given relation to probe's
key: the equal record for Eq, the greatest record below it for Lt/Le, the
smallest record above it for Gt/Ge (Le and Ge accept an exact match, Lt
and Gt skip it). Returns nil if no record qualifies.

A nil probe acts as a key beyond either end: Lt and Le return the
maximum, Gt and Ge the minimum, Eq nothing.
*/
func (t *Tree[T]) FindRel(probe *T, relation Relation) *T {
	if probe == nil {
		switch relation {
		case Lt, Le:
			return t.Last()
		case Gt, Ge:
			return t.First()
		default:
			return nil
		}
	}
	var found *T
	node := t.root
	for node != nil {
		if cmp := t.cmp(probe, node); cmp < 0 {
			if relation == Gt || relation == Ge {
				found = node
			}
			node = t.hook(node).left
		} else if cmp > 0 {
			if relation == Lt || relation == Le {
				found = node
			}
			node = t.hook(node).right
		} else {
			switch relation {
			case Lt:
				/* exact match excluded: its predecessor is the
				   rightmost record of the left subtree, if any */
				node = t.hook(node).left
			case Gt:
				node = t.hook(node).right
			default:
				return node
			}
		}
	}
	return found
}

// Search finds the record whose key equals probe's, or nil. Only probe's
// key is consulted.
func (t *Tree[T]) Search(probe *T) *T {
	return t.FindRel(probe, Eq)
}

// Iter positions an in-order walk: it returns the smallest record whose
// key is greater than or equal to probe's, or nil if every key is below
// probe. Step onward with [Tree.Next].
func (t *Tree[T]) Iter(probe *T) *T {
	return t.FindRel(probe, Ge)
}

// First - the minimum record, or nil if the tree is empty.
func (t *Tree[T]) First() *T {
	node := t.root
	if node == nil {
		return nil
	}
	for l := t.hook(node).left; l != nil; l = t.hook(node).left {
		node = l
	}
	return node
}

// Last - the maximum record, or nil if the tree is empty.
func (t *Tree[T]) Last() *T {
	node := t.root
	if node == nil {
		return nil
	}
	for r := t.hook(node).right; r != nil; r = t.hook(node).right {
		node = r
	}
	return node
}
