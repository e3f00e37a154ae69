package rbtree

// Insert inserts value into the tree.
//
// For a unique-key tree, if an element with an equal key is already present,
// Insert returns an iterator to that element and false, leaving the tree
// unchanged. In a multi-key tree the new element is placed after all elements
// with an equal key.
//
// If no node can be allocated, Insert returns End(), false and an error
// wrapping ErrAllocation. The tree is unchanged in this case.
func (t *Tree[K, V]) Insert(value V) (Iterator[V], bool, error) {
	k := t.cfg.KeyOf(value)
	parent, left, dup := t.insertPos(k)
	if dup != sentinel {
		return t.iter(dup), false, nil
	}
	return t.insertAt(parent, left, value)
}

// InsertHint inserts value, using hint as a suggestion for the position.
// If value belongs immediately before hint (or immediately after its
// predecessor), the insertion runs in amortized O(1); otherwise it falls
// back to Insert. hint may be End().
//
// In a multi-key tree, an element with a key equal to hint's key is placed
// as close as possible before hint.
func (t *Tree[K, V]) InsertHint(hint Iterator[V], value V) (Iterator[V], bool, error) {
	if err := t.checkPosition(hint); err != nil {
		return t.End(), false, err
	}
	k := t.cfg.KeyOf(value)
	var parent ref
	var left, ok bool
	if t.cfg.Multi {
		parent, left, ok = t.hintPosMulti(hint.at, k)
	} else {
		var dup ref
		parent, left, dup, ok = t.hintPosUnique(hint.at, k)
		if ok && dup != sentinel {
			return t.iter(dup), false, nil
		}
	}
	if !ok {
		return t.Insert(value)
	}
	return t.insertAt(parent, left, value)
}

// InsertRange inserts values one at a time and returns the number of values
// actually inserted. Insertion stops at the first allocation failure.
//
// Values are inserted with End() as a hint, making the insertion of
// ascending input cheap.
func (t *Tree[K, V]) InsertRange(values ...V) (int, error) {
	inserted := 0
	for _, v := range values {
		_, ok, err := t.InsertHint(t.End(), v)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// insertPos finds the prospective parent for a new element with key k and
// whether it goes to the parent's left. For unique-key trees dup is the
// existing node with an equal key, if any.
func (t *Tree[K, V]) insertPos(k K) (parent ref, left bool, dup ref) {
	a := t.nodes
	x, y := a.root(), sentinel
	left = true
	for x != sentinel {
		y = x
		n := a.at(x)
		left = t.less(k, t.cfg.KeyOf(n.value))
		if left {
			x = n.left
		} else {
			x = n.right
		}
	}
	if t.cfg.Multi {
		return y, left, sentinel
	}
	// j is the would-be predecessor; k duplicates it unless key(j) < k
	j := y
	if left {
		if j == a.leftmost() {
			return y, left, sentinel
		}
		j = a.predecessor(j)
	}
	if t.less(t.key(j), k) {
		return y, left, sentinel
	}
	return y, left, j
}

func (t *Tree[K, V]) hintPosUnique(hint ref, k K) (parent ref, left bool, dup ref, ok bool) {
	a := t.nodes
	if hint == sentinel {
		if t.size > 0 && t.less(t.key(a.rightmost()), k) {
			return a.rightmost(), false, sentinel, true
		}
		return sentinel, false, sentinel, false
	}
	hk := t.key(hint)
	switch {
	case t.less(k, hk):
		if hint == a.leftmost() {
			return hint, true, sentinel, true
		}
		before := a.predecessor(hint)
		if t.less(t.key(before), k) {
			if a.at(before).right == sentinel {
				return before, false, sentinel, true
			}
			return hint, true, sentinel, true
		}
	case t.less(hk, k):
		if hint == a.rightmost() {
			return hint, false, sentinel, true
		}
		after := a.successor(hint)
		if t.less(k, t.key(after)) {
			if a.at(hint).right == sentinel {
				return hint, false, sentinel, true
			}
			return after, true, sentinel, true
		}
	default:
		return sentinel, false, hint, true
	}
	return sentinel, false, sentinel, false
}

func (t *Tree[K, V]) hintPosMulti(hint ref, k K) (parent ref, left bool, ok bool) {
	a := t.nodes
	if hint == sentinel {
		if t.size > 0 && !t.less(k, t.key(a.rightmost())) {
			return a.rightmost(), false, true
		}
		return sentinel, false, false
	}
	hk := t.key(hint)
	if !t.less(hk, k) { // k <= hint
		if hint == a.leftmost() {
			return hint, true, true
		}
		before := a.predecessor(hint)
		if !t.less(k, t.key(before)) {
			if a.at(before).right == sentinel {
				return before, false, true
			}
			return hint, true, true
		}
		return sentinel, false, false
	}
	if hint == a.rightmost() {
		return hint, false, true
	}
	after := a.successor(hint)
	if !t.less(t.key(after), k) {
		if a.at(hint).right == sentinel {
			return hint, false, true
		}
		return after, true, true
	}
	return sentinel, false, false
}

// insertAt links a new node below parent and rebalances. Allocation happens
// before any link is changed.
func (t *Tree[K, V]) insertAt(parent ref, left bool, value V) (Iterator[V], bool, error) {
	a := t.nodes
	r, err := a.alloc(value)
	if err != nil {
		tracer().Errorf("rbtree: insert failed: %v", err)
		return t.End(), false, err
	}
	a.at(r).parent = parent
	s := a.sentinel()
	switch {
	case parent == sentinel:
		s.parent, s.left, s.right = r, r, r
	case left:
		a.at(parent).left = r
		if parent == s.left {
			s.left = r
		}
	default:
		a.at(parent).right = r
		if parent == s.right {
			s.right = r
		}
	}
	t.size++
	t.insertFixup(r)
	return t.iter(r), true, nil
}
