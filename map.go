package ordered

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

// Entry is the element type of maps: a key and its mapped value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func entryKey[K, V any](e Entry[K, V]) K {
	return e.Key
}

func mapConfig[K, V any](compare func(a, b K) int, multi bool, maxNodes int) rbtree.Config[K, Entry[K, V]] {
	return rbtree.Config[K, Entry[K, V]]{
		Compare:  compare,
		KeyOf:    entryKey[K, V],
		Multi:    multi,
		MaxNodes: maxNodes,
	}
}

// Map is an ordered map with unique keys.
//
// A Map embeds its tree, making all tree operations available. Tree
// operations work on Entry values; the methods below offer a key/value view.
type Map[K, V any] struct {
	*rbtree.Tree[K, Entry[K, V]]
}

// NewMap creates an empty map for naturally ordered keys.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMapFunc[K, V](cmp.Compare[K], 0)
	assert(err == nil, "NewMap: cannot create tree")
	return m
}

// NewMapFunc creates an empty map ordered by compare. maxNodes limits the
// number of entries; 0 means unlimited.
func NewMapFunc[K, V any](compare func(a, b K) int, maxNodes int) (*Map[K, V], error) {
	tree, err := rbtree.New(mapConfig[K, V](compare, false, maxNodes))
	if err != nil {
		T().Errorf("ordered: cannot create map: %v", err)
		return nil, err
	}
	return &Map[K, V]{Tree: tree}, nil
}

// At returns a pointer to the value mapped to key. If key is not present, it
// is inserted with the zero value first. Lookup and insertion take a single
// descent.
//
// The pointer stays valid until key is removed from the map.
func (m *Map[K, V]) At(key K) (*V, error) {
	it, _, err := m.Insert(Entry[K, V]{Key: key})
	if err != nil {
		return nil, err
	}
	return &it.Ptr().Value, nil
}

// Get returns the value mapped to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.Find(key)
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Ptr().Value, true
}

// Put maps key to value, replacing an existing mapping. It reports whether
// key was newly inserted.
func (m *Map[K, V]) Put(key K, value V) (bool, error) {
	it, inserted, err := m.Insert(Entry[K, V]{Key: key, Value: value})
	if err != nil {
		return false, err
	}
	if !inserted {
		it.Ptr().Value = value
	}
	return inserted, nil
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.EraseKey(key) > 0
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return keys(m.Tree)
}

// Values returns an iterator over all values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return values(m.Tree)
}

// Pairs returns an iterator over all key/value pairs in ascending key order.
func (m *Map[K, V]) Pairs() iter.Seq2[K, V] {
	return pairs(m.All())
}

func keys[K, V any](tree *rbtree.Tree[K, Entry[K, V]]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range tree.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

func values[K, V any](tree *rbtree.Tree[K, Entry[K, V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range tree.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func pairs[K, V any](entries iter.Seq[Entry[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// --- Multi-key maps ---------------------------------------------------------

// MultiMap is an ordered map permitting multiple values per key. Values
// with equal keys are kept in insertion order.
type MultiMap[K, V any] struct {
	*rbtree.Tree[K, Entry[K, V]]
}

// NewMultiMap creates an empty multimap for naturally ordered keys.
func NewMultiMap[K cmp.Ordered, V any]() *MultiMap[K, V] {
	m, err := NewMultiMapFunc[K, V](cmp.Compare[K], 0)
	assert(err == nil, "NewMultiMap: cannot create tree")
	return m
}

// NewMultiMapFunc creates an empty multimap ordered by compare. maxNodes
// limits the number of entries; 0 means unlimited.
func NewMultiMapFunc[K, V any](compare func(a, b K) int, maxNodes int) (*MultiMap[K, V], error) {
	tree, err := rbtree.New(mapConfig[K, V](compare, true, maxNodes))
	if err != nil {
		T().Errorf("ordered: cannot create multimap: %v", err)
		return nil, err
	}
	return &MultiMap[K, V]{Tree: tree}, nil
}

// Add maps key to value in addition to existing mappings of key.
func (m *MultiMap[K, V]) Add(key K, value V) (rbtree.Iterator[Entry[K, V]], error) {
	it, _, err := m.Insert(Entry[K, V]{Key: key, Value: value})
	return it, err
}

// GetAll returns an iterator over all values mapped to key, in insertion
// order.
func (m *MultiMap[K, V]) GetAll(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		first, last := m.EqualRange(key)
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Ptr().Value) {
				return
			}
		}
	}
}

// Delete removes all mappings of key and returns their number.
func (m *MultiMap[K, V]) Delete(key K) int {
	return m.EraseKey(key)
}

// Keys returns an iterator over all keys in ascending order. A key is
// repeated for each of its values.
func (m *MultiMap[K, V]) Keys() iter.Seq[K] {
	return keys(m.Tree)
}

// Values returns an iterator over all values in ascending key order.
func (m *MultiMap[K, V]) Values() iter.Seq[V] {
	return values(m.Tree)
}

// Pairs returns an iterator over all key/value pairs in ascending key order.
func (m *MultiMap[K, V]) Pairs() iter.Seq2[K, V] {
	return pairs(m.All())
}
