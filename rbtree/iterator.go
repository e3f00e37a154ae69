package rbtree

// Iterator denotes a position in a tree: either an element or the
// past-the-end position End().
//
// Iterators are small values and are compared with Equal. An iterator stays
// valid until the element it denotes is erased (or the tree is cleared).
// Stepping is circular: Next of End() yields Begin(), Prev of Begin() yields
// End().
//
// The zero Iterator belongs to no tree and must not be stepped.
type Iterator[V any] struct {
	nodes *arena[V]
	at    ref
	stamp uint64
}

func (it Iterator[V]) with(r ref) Iterator[V] {
	return Iterator[V]{
		nodes: it.nodes,
		at:    r,
		stamp: it.nodes.at(r).stamp,
	}
}

// Next returns an iterator to the in-order successor.
func (it Iterator[V]) Next() Iterator[V] {
	assert(it.nodes != nil, "rbtree: stepping an uninitialized iterator")
	return it.with(it.nodes.successor(it.at))
}

// Prev returns an iterator to the in-order predecessor. The predecessor of
// End() is the element with the largest key.
func (it Iterator[V]) Prev() Iterator[V] {
	assert(it.nodes != nil, "rbtree: stepping an uninitialized iterator")
	return it.with(it.nodes.predecessor(it.at))
}

// IsEnd reports whether it is the past-the-end position.
func (it Iterator[V]) IsEnd() bool {
	return it.at == sentinel
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.nodes == other.nodes && it.at == other.at
}

// Value returns the element at it. Calling Value on End() panics.
func (it Iterator[V]) Value() V {
	return *it.Ptr()
}

// Ptr returns a pointer to the element at it. The pointer stays valid as long
// as the iterator does. Clients must not change the element's key through it.
func (it Iterator[V]) Ptr() *V {
	assert(it.nodes != nil, "rbtree: dereferencing an uninitialized iterator")
	assert(it.at != sentinel, "rbtree: dereferencing the end iterator")
	return &it.nodes.at(it.at).value
}

// ReverseIterator walks a tree from the largest to the smallest key. It wraps
// an Iterator to the position after the element it denotes, so RBegin()
// wraps End() and REnd() wraps Begin().
type ReverseIterator[V any] struct {
	base Iterator[V]
}

// Reverse converts an iterator to a reverse iterator denoting the element
// before it.
func Reverse[V any](it Iterator[V]) ReverseIterator[V] {
	return ReverseIterator[V]{base: it}
}

// Base returns the underlying forward iterator, which denotes the element
// after the one denoted by r.
func (r ReverseIterator[V]) Base() Iterator[V] {
	return r.base
}

// Next steps towards smaller keys.
func (r ReverseIterator[V]) Next() ReverseIterator[V] {
	return ReverseIterator[V]{base: r.base.Prev()}
}

// Prev steps towards larger keys.
func (r ReverseIterator[V]) Prev() ReverseIterator[V] {
	return ReverseIterator[V]{base: r.base.Next()}
}

// IsEnd reports whether r is the past-the-end reverse position.
func (r ReverseIterator[V]) IsEnd() bool {
	return r.base.nodes == nil || r.base.at == r.base.nodes.leftmost()
}

// Equal reports whether two reverse iterators denote the same position.
func (r ReverseIterator[V]) Equal(other ReverseIterator[V]) bool {
	return r.base.Equal(other.base)
}

// Value returns the element at r. Calling Value on REnd() panics.
func (r ReverseIterator[V]) Value() V {
	assert(!r.IsEnd(), "rbtree: dereferencing the reverse end iterator")
	return r.base.Prev().Value()
}
