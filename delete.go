package aatree

import "github.com/sirupsen/logrus"

/*
Delete removes the record whose key equals probe's and returns it
detached, or nil if no such record exists. Only probe's key is consulted;
its hook is ignored, so a stack-allocated probe is fine.
*/
func (t *Tree[T]) Delete(probe *T) *T {
	var deleted *T
	t.root = t.delete0(t.root, probe, &deleted)
	if deleted != nil {
		t.clear(deleted)
		t.count--
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "delete", "probe": probe, "deleted": deleted,
		}).Debug("deleted record")
	}

	return deleted
}

// DeleteFirst removes and returns the minimum record, detached, or nil if
// the tree is empty.
func (t *Tree[T]) DeleteFirst() *T {
	var deleted *T
	t.root = t.deleteFirst0(t.root, &deleted)
	if deleted != nil {
		t.clear(deleted)
		t.count--
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "delete-first", "deleted": deleted,
		}).Debug("deleted minimum record")
	}

	return deleted
}

// DeleteLast removes and returns the maximum record, detached, or nil if
// the tree is empty.
func (t *Tree[T]) DeleteLast() *T {
	var deleted *T
	t.root = t.deleteLast0(t.root, &deleted)
	if deleted != nil {
		t.clear(deleted)
		t.count--
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"op": "delete-last", "deleted": deleted,
		}).Debug("deleted maximum record")
	}

	return deleted
}

func (t *Tree[T]) delete0(node, probe *T, deleted **T) *T {
	if node == nil {
		return nil
	}
	nh := t.hook(node)
	if cmp := t.cmp(probe, node); cmp < 0 {
		nh.left = t.delete0(nh.left, probe, deleted)
	} else if cmp > 0 {
		nh.right = t.delete0(nh.right, probe, deleted)
	} else {
		*deleted = node
		if nh.left == nil && nh.right == nil {
			/* a leaf: unlink and skip the fixup */
			return nil
		}
		/*
		 * Splice an in-order neighbour out of a subtree and move it
		 * into this slot, so the caller gets back the exact record
		 * they asked for rather than a copy of its payload.
		 */
		var neighbour *T
		if nh.left == nil {
			nh.right = t.deleteFirst0(nh.right, &neighbour)
		} else {
			nh.left = t.deleteLast0(nh.left, &neighbour)
		}
		xh := t.hook(neighbour)
		xh.left = nh.left
		xh.right = nh.right
		xh.level = nh.level
		node = neighbour
	}
	return t.deleteFixup(node)
}

func (t *Tree[T]) deleteFirst0(node *T, deleted **T) *T {
	if node == nil {
		return nil
	}
	nh := t.hook(node)
	if nh.left == nil {
		/* the minimum: replace with its right child, horizontal or nil */
		*deleted = node
		return nh.right
	}
	nh.left = t.deleteFirst0(nh.left, deleted)
	return t.deleteFixup(node)
}

func (t *Tree[T]) deleteLast0(node *T, deleted **T) *T {
	if node == nil {
		return nil
	}
	nh := t.hook(node)
	if nh.right == nil {
		*deleted = node
		return nh.left
	}
	nh.right = t.deleteLast0(nh.right, deleted)
	return t.deleteFixup(node)
}

/*
deleteFixup restores the level invariants at one ancestor after a removal
below it. The sequence is fixed and order-sensitive: drop the level, skew
three times down the right spine, then split twice.
*/
func (t *Tree[T]) deleteFixup(node *T) *T {
	node = t.decreaseLevel(node)
	node = t.skew(node)
	nh := t.hook(node)
	nh.right = t.skew(nh.right)
	if nh.right != nil {
		rh := t.hook(nh.right)
		rh.right = t.skew(rh.right)
	}
	node = t.split(node)
	nh = t.hook(node)
	nh.right = t.split(nh.right)
	return node
}

// decreaseLevel clamps a node whose level is now too high for its
// children, pulling a right horizontal link down with it when needed.
func (t *Tree[T]) decreaseLevel(node *T) *T {
	nh := t.hook(node)
	if nh.left == nil && nh.right == nil {
		return node
	}
	level := 0
	if nh.left != nil && nh.right != nil {
		level = min(t.hook(nh.left).level, t.hook(nh.right).level)
	}
	level++
	if level < nh.level {
		nh.level = level
		if nh.right != nil && level < t.hook(nh.right).level {
			t.hook(nh.right).level = level
		}
	}
	return node
}
