/*
Package ordered offers ordered maps and sets, backed by a red-black tree.

Ordered Containers

Go's built-in maps are unordered. The containers of this package keep their
elements sorted by key and support range queries, bidirectional iteration
and positional erasure:

	m := ordered.NewMap[string, int]()
	p, _ := m.At("b") // find-or-create
	*p += 2
	m.Put("a", 1)
	for k, v := range m.Pairs() {
		fmt.Println(k, v) // a 1, b 2
	}

Set, MultiSet, Map and MultiMap are thin adapters over package rbtree. They
embed the tree, so all tree operations (Find, LowerBound, UpperBound,
EqualRange, Insert, InsertHint, Erase, EraseKey, EraseRange, Begin, End,
RBegin, REnd, Len, Clear, Swap, …) are available on every container. Sets
store keys directly, maps store Entry values keyed by their Key field.

	Operation             |  Complexity
	----------------------+-------------
	Lookup, bounds        |   O(log n)
	Insert                |   O(log n)
	Erase at iterator     |   O(1) amortized
	Min, Max, Begin       |   O(1)
	Iterate               |   O(n)

Iterators remain valid across insertions and across erasure of other
elements. Containers are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/ordered/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors surfaced by the containers. They are identical to the errors of
// package rbtree and may be checked with errors.Is.
var (
	ErrInvalidConfig   = rbtree.ErrInvalidConfig
	ErrAllocation      = rbtree.ErrAllocation
	ErrInvalidIterator = rbtree.ErrInvalidIterator
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
