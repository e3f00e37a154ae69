//go:build !rbtree_debug

package rbtree

import "fmt"

// checkPosition accepts any iterator of t, including End().
func (t *Tree[K, V]) checkPosition(it Iterator[V]) error {
	if it.nodes != t.nodes {
		return fmt.Errorf("%w: iterator does not belong to this tree", ErrInvalidIterator)
	}
	return nil
}

// checkElement accepts iterators of t which denote an element. Iterators to
// free slots are rejected; a recycled slot is only detected with rbtree_debug.
func (t *Tree[K, V]) checkElement(it Iterator[V]) error {
	if err := t.checkPosition(it); err != nil {
		return err
	}
	if it.at == sentinel {
		return fmt.Errorf("%w: end iterator does not denote an element", ErrInvalidIterator)
	}
	if t.nodes.at(it.at).stamp == 0 {
		return fmt.Errorf("%w: iterator denotes an erased element", ErrInvalidIterator)
	}
	return nil
}
