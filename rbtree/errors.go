package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that no node could be allocated for an insertion.
	// The tree is left unchanged.
	ErrAllocation = errors.New("rbtree: node allocation failed")
	// ErrInvalidIterator signals an iterator which does not denote an element
	// of the tree it is used with.
	ErrInvalidIterator = errors.New("rbtree: invalid iterator")
	// ErrInvariantViolated is reported by Check for a corrupted tree.
	ErrInvariantViolated = errors.New("rbtree: invariant violated")
)
