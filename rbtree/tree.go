package rbtree

// Tree is a red-black tree storing values of type V ordered by keys of type K.
//
// A tree is created by New. Depending on Config.Multi it holds either unique
// keys (map/set semantics) or permits duplicates (multimap/multiset
// semantics), where equal keys are kept in insertion order.
//
//	Operation        |  Complexity
//	-----------------+---------------------
//	Find, bounds     |   O(log n)
//	Insert           |   O(log n)
//	InsertHint       |   O(1) amortized when the hint is adjacent
//	Erase            |   O(log n), O(1) amortized rebalancing
//	Begin, End, Min  |   O(1)
//	Clear            |   O(n), no rebalancing
type Tree[K, V any] struct {
	cfg   Config[K, V]
	nodes *arena[V]
	size  int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg:   cfg,
		nodes: newArena[V](cfg.MaxNodes),
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// IsMulti reports whether the tree permits equal keys.
func (t *Tree[K, V]) IsMulti() bool {
	return t.cfg.Multi
}

// Begin returns an iterator to the element with the smallest key, or End()
// for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[V] {
	return t.iter(t.nodes.leftmost())
}

// End returns the past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[V] {
	return t.iter(sentinel)
}

// RBegin returns a reverse iterator to the element with the largest key.
func (t *Tree[K, V]) RBegin() ReverseIterator[V] {
	return ReverseIterator[V]{base: t.End()}
}

// REnd returns the past-the-end reverse iterator.
func (t *Tree[K, V]) REnd() ReverseIterator[V] {
	return ReverseIterator[V]{base: t.Begin()}
}

// Min returns the value with the smallest key.
func (t *Tree[K, V]) Min() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.nodes.at(t.nodes.leftmost()).value, true
}

// Max returns the value with the largest key. For equal keys in a multi-key
// tree this is the one inserted last.
func (t *Tree[K, V]) Max() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.nodes.at(t.nodes.rightmost()).value, true
}

// Clear removes all elements. Iterators to elements are invalidated, End()
// stays valid.
func (t *Tree[K, V]) Clear() {
	if t.size > 0 {
		tracer().Debugf("rbtree: clearing %d nodes", t.size)
	}
	t.nodes.reset()
	t.size = 0
}

// Swap exchanges the contents of two trees, including their configurations.
// No node is touched; iterators keep pointing to their elements, which now
// belong to the other tree.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	if t == other || other == nil {
		return
	}
	*t, *other = *other, *t
}

// Clone returns a deep copy of the tree structure. Values are copied by
// assignment. The copy is made without rebalancing, in O(n).
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	return &Tree[K, V]{
		cfg:   t.cfg,
		nodes: t.nodes.clone(),
		size:  t.size,
	}
}

func (t *Tree[K, V]) iter(r ref) Iterator[V] {
	return Iterator[V]{
		nodes: t.nodes,
		at:    r,
		stamp: t.nodes.at(r).stamp,
	}
}

func (t *Tree[K, V]) key(r ref) K {
	return t.cfg.KeyOf(t.nodes.at(r).value)
}

func (t *Tree[K, V]) less(a, b K) bool {
	return t.cfg.Compare(a, b) < 0
}
