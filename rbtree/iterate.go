package rbtree

import "iter"

// The sequences below must not be used while the tree is modified, except
// for changing mapped (non-key) parts of values through Iterator.Ptr.

// All returns an iterator over all values in ascending key order.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return t.span(t.nodes.leftmost(), sentinel)
}

// Backward returns an iterator over all values in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		a := t.nodes
		for r := a.rightmost(); r != sentinel; r = a.predecessor(r) {
			if !yield(a.at(r).value) {
				return
			}
		}
	}
}

// Ascend returns an iterator over all values with keys not less than from,
// in ascending key order.
func (t *Tree[K, V]) Ascend(from K) iter.Seq[V] {
	return t.span(t.lowerBound(from), sentinel)
}

// Range returns an iterator over all values with keys in [lo, hi).
func (t *Tree[K, V]) Range(lo, hi K) iter.Seq[V] {
	if !t.less(lo, hi) {
		return func(func(V) bool) {}
	}
	return t.span(t.lowerBound(lo), t.lowerBound(hi))
}

// ForEach walks values in-order. Iteration stops early if fn returns false.
func (t *Tree[K, V]) ForEach(fn func(value V) bool) {
	if t == nil || fn == nil {
		return
	}
	t.span(t.nodes.leftmost(), sentinel)(fn)
}

func (t *Tree[K, V]) span(first, last ref) iter.Seq[V] {
	return func(yield func(V) bool) {
		a := t.nodes
		for r := first; r != last && r != sentinel; r = a.successor(r) {
			if !yield(a.at(r).value) {
				return
			}
		}
	}
}
