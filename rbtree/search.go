package rbtree

// Find returns an iterator to an element with key k, or End() if there is
// none. In a multi-key tree the first of the equal elements is returned.
func (t *Tree[K, V]) Find(k K) Iterator[V] {
	r := t.lowerBound(k)
	if r == sentinel || t.less(k, t.key(r)) {
		return t.End()
	}
	return t.iter(r)
}

// Contains reports whether an element with key k is present.
func (t *Tree[K, V]) Contains(k K) bool {
	return t.Find(k).at != sentinel
}

// Get returns the first value with key k.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	it := t.Find(k)
	if it.at == sentinel {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

// LowerBound returns an iterator to the first element with a key not less
// than k, or End().
func (t *Tree[K, V]) LowerBound(k K) Iterator[V] {
	return t.iter(t.lowerBound(k))
}

// UpperBound returns an iterator to the first element with a key greater
// than k, or End().
func (t *Tree[K, V]) UpperBound(k K) Iterator[V] {
	return t.iter(t.upperBound(k))
}

// EqualRange returns the half-open range [first, last) of elements with
// key k. The range is empty, i.e. first equals last, if k is not present.
func (t *Tree[K, V]) EqualRange(k K) (first, last Iterator[V]) {
	return t.iter(t.lowerBound(k)), t.iter(t.upperBound(k))
}

// Count returns the number of elements with key k.
func (t *Tree[K, V]) Count(k K) int {
	first, last := t.lowerBound(k), t.upperBound(k)
	n := 0
	for r := first; r != last; r = t.nodes.successor(r) {
		n++
	}
	return n
}

func (t *Tree[K, V]) lowerBound(k K) ref {
	a := t.nodes
	x, y := a.root(), sentinel
	for x != sentinel {
		n := a.at(x)
		if t.less(t.cfg.KeyOf(n.value), k) {
			x = n.right
		} else {
			y = x
			x = n.left
		}
	}
	return y
}

func (t *Tree[K, V]) upperBound(k K) ref {
	a := t.nodes
	x, y := a.root(), sentinel
	for x != sentinel {
		n := a.at(x)
		if t.less(k, t.cfg.KeyOf(n.value)) {
			y = x
			x = n.left
		} else {
			x = n.right
		}
	}
	return y
}
