package aatree

import "github.com/sirupsen/logrus"

/*
Insert places a detached record item into the tree.

If no record of equal key exists, item becomes a new leaf and Insert
returns nil. If one does, item takes its slot in place (inheriting its
links and level) and the displaced record is returned detached; the
caller usually wants it back to reclaim its storage.

Inserting a record that is already in this tree is a no-op that returns
the record itself.
*/
func (t *Tree[T]) Insert(item *T) *T {
	var replaced *T
	t.root = t.insert0(t.root, item, &replaced)
	if replaced != item {
		t.clear(replaced)
	}
	if replaced == nil {
		t.count++
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "insert", "item": item, "replaced": replaced,
		}).Debug("inserted record")
	}

	return replaced
}

func (t *Tree[T]) insert0(node, item *T, replaced **T) *T {
	if node == nil {
		h := t.hook(item)
		h.left = nil
		h.right = nil
		h.level = 1
		node = item
	} else {
		nh := t.hook(node)
		if cmp := t.cmp(item, node); cmp < 0 {
			nh.left = t.insert0(nh.left, item, replaced)
		} else if cmp > 0 {
			nh.right = t.insert0(nh.right, item, replaced)
		} else {
			/* equal keys: item takes over this slot */
			*replaced = node
			ih := t.hook(item)
			ih.left = nh.left
			ih.right = nh.right
			ih.level = nh.level
			node = item
		}
	}
	node = t.skew(node)
	node = t.split(node)
	return node
}

/*
skew: right rotation removing a left horizontal link.

	  L <-- N             L --> N
	 / \     \     ->    /     / \
	A   B     R         A     B   R
*/
func (t *Tree[T]) skew(node *T) *T {
	if node == nil {
		return nil
	}
	nh := t.hook(node)
	if nh.left == nil {
		return node
	}
	lh := t.hook(nh.left)
	if lh.level != nh.level {
		return node
	}
	left := nh.left
	nh.left = lh.right
	lh.right = node
	return left
}

/*
split: left rotation and level promotion removing two consecutive right
horizontal links. R is promoted one level.

	N --> R --> X           R
	     /          ->     / \
	    B                 N   X
	                       \
	                        B
*/
func (t *Tree[T]) split(node *T) *T {
	if node == nil {
		return nil
	}
	nh := t.hook(node)
	if nh.right == nil {
		return node
	}
	rh := t.hook(nh.right)
	if rh.right == nil || t.hook(rh.right).level != nh.level {
		return node
	}
	right := nh.right
	nh.right = rh.left
	rh.left = node
	rh.level++
	return right
}
