package rbtree

import (
	"fmt"
	"math"
)

type color uint8

// black is the zero value: a zeroed node is a valid, empty sentinel.
const (
	black color = iota
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// ref addresses a node slot in an arena. Slot 0 is the sentinel.
type ref uint32

const sentinel ref = 0

const (
	blockShift = 6
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
	// maxNodes is the upper bound for real nodes in a single tree.
	maxNodes = math.MaxInt32 - 1
)

type node[V any] struct {
	left, parent, right ref
	color               color
	// stamp identifies the allocation occupying the slot; 0 for free slots
	// and the sentinel.
	stamp uint64
	value V
}

// arena holds the nodes of a single tree. Nodes are stored in fixed-size
// blocks which are never reallocated, so node addresses are stable for the
// lifetime of a node.
type arena[V any] struct {
	blocks []*[blockSize]node[V]
	free   []ref // recycled slots
	next   ref   // first never-used slot
	live   int   // allocated real nodes
	limit  int
	stamps uint64 // last stamp handed out
}

func newArena[V any](limit int) *arena[V] {
	return &arena[V]{
		blocks: []*[blockSize]node[V]{new([blockSize]node[V])},
		next:   1,
		limit:  limit,
	}
}

func (a *arena[V]) at(r ref) *node[V] {
	return &a.blocks[r>>blockShift][r&blockMask]
}

func (a *arena[V]) sentinel() *node[V] {
	return &a.blocks[0][0]
}

func (a *arena[V]) root() ref      { return a.blocks[0][0].parent }
func (a *arena[V]) leftmost() ref  { return a.blocks[0][0].left }
func (a *arena[V]) rightmost() ref { return a.blocks[0][0].right }

// alloc places value into a fresh red node with all links pointing to the
// sentinel. It fails before touching any existing node.
func (a *arena[V]) alloc(value V) (ref, error) {
	if a.live >= a.limit {
		return sentinel, fmt.Errorf("%w: node limit %d reached", ErrAllocation, a.limit)
	}
	var r ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if int(a.next) == len(a.blocks)*blockSize {
			a.blocks = append(a.blocks, new([blockSize]node[V]))
		}
		r = a.next
		a.next++
	}
	a.stamps++
	a.live++
	n := a.at(r)
	*n = node[V]{
		color: red,
		stamp: a.stamps,
		value: value,
	}
	return r, nil
}

// release returns a node slot to the arena and drops the stored value.
func (a *arena[V]) release(r ref) {
	assert(r != sentinel, "arena cannot release the sentinel")
	n := a.at(r)
	assert(n.stamp != 0, "arena slot released twice")
	*n = node[V]{}
	a.free = append(a.free, r)
	a.live--
}

// reset drops all nodes at once. The sentinel keeps its slot, so
// past-the-end iterators stay valid.
func (a *arena[V]) reset() {
	for i := range a.blocks[0] {
		a.blocks[0][i] = node[V]{}
	}
	a.blocks = a.blocks[:1]
	a.free = nil
	a.next = 1
	a.live = 0
}

// clone copies the arena wholesale. Refs stay valid in the copy.
func (a *arena[V]) clone() *arena[V] {
	c := &arena[V]{
		blocks: make([]*[blockSize]node[V], len(a.blocks)),
		free:   append([]ref(nil), a.free...),
		next:   a.next,
		live:   a.live,
		limit:  a.limit,
		stamps: a.stamps,
	}
	for i, b := range a.blocks {
		blk := *b
		c.blocks[i] = &blk
	}
	return c
}

// isLive reports whether r denotes an allocated real node carrying stamp.
func (a *arena[V]) isLive(r ref, stamp uint64) bool {
	if r == sentinel || r >= a.next {
		return false
	}
	n := a.at(r)
	return n.stamp != 0 && n.stamp == stamp
}

func (a *arena[V]) minimum(r ref) ref {
	for a.at(r).left != sentinel {
		r = a.at(r).left
	}
	return r
}

func (a *arena[V]) maximum(r ref) ref {
	for a.at(r).right != sentinel {
		r = a.at(r).right
	}
	return r
}

// successor returns the in-order successor of r. The successor of the
// sentinel is the leftmost node, making traversal circular through the
// past-the-end position.
func (a *arena[V]) successor(r ref) ref {
	if r == sentinel {
		return a.leftmost()
	}
	n := a.at(r)
	if n.right != sentinel {
		return a.minimum(n.right)
	}
	p := n.parent
	for p != sentinel && r == a.at(p).right {
		r = p
		p = a.at(p).parent
	}
	return p
}

// predecessor returns the in-order predecessor of r. The predecessor of the
// sentinel is the cached rightmost node.
func (a *arena[V]) predecessor(r ref) ref {
	if r == sentinel {
		return a.rightmost()
	}
	n := a.at(r)
	if n.left != sentinel {
		return a.maximum(n.left)
	}
	p := n.parent
	for p != sentinel && r == a.at(p).left {
		r = p
		p = a.at(p).parent
	}
	return p
}
