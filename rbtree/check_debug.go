//go:build rbtree_debug

package rbtree

import "fmt"

// checkPosition accepts any live iterator of t, including End().
func (t *Tree[K, V]) checkPosition(it Iterator[V]) error {
	if it.nodes != t.nodes {
		return fmt.Errorf("%w: iterator does not belong to this tree", ErrInvalidIterator)
	}
	if it.at != sentinel && !t.nodes.isLive(it.at, it.stamp) {
		return fmt.Errorf("%w: iterator denotes an erased element", ErrInvalidIterator)
	}
	return nil
}

// checkElement accepts live iterators of t which denote an element.
func (t *Tree[K, V]) checkElement(it Iterator[V]) error {
	if it.at == sentinel {
		return fmt.Errorf("%w: end iterator does not denote an element", ErrInvalidIterator)
	}
	return t.checkPosition(it)
}
