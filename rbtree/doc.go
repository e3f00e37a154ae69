/*
Package rbtree provides the red-black tree engine behind the ordered map and
set containers of package ordered.

The tree is a classic header-node red-black tree: every tree owns one
sentinel node which terminates all leaf links, is the parent of the root and
serves as the past-the-end position for iterators. The sentinel's left and
right links cache the leftmost and rightmost nodes, so Begin, Min and Max are
O(1).

Nodes live in a per-tree arena and reference each other by index. Arena slots
never move, which keeps iterators stable: inserting or erasing an element
invalidates only iterators pointing at the erased element. Erasing a node
with two children relinks its in-order successor into the erased node's
position instead of copying values around.

Key order is defined by a three-way comparison function, the key of a stored
value by a projection function. Both are configured with Config:

	tree, err := rbtree.New(rbtree.Config[int, int]{
		Compare: cmp.Compare[int],
		KeyOf:   rbtree.Identity[int],
		Multi:   false,
	})

Trees are not safe for concurrent mutation. Concurrent readers are fine as
long as no writer is active.

Builds with tag `rbtree_debug` check every iterator handed to a tree for
membership and staleness. Default builds only reject iterators of other trees
and the past-the-end iterator where an element is required.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
