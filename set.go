package ordered

import (
	"cmp"

	"github.com/npillmayer/ordered/rbtree"
)

func setConfig[K any](compare func(a, b K) int, multi bool, maxNodes int) rbtree.Config[K, K] {
	return rbtree.Config[K, K]{
		Compare:  compare,
		KeyOf:    rbtree.Identity[K],
		Multi:    multi,
		MaxNodes: maxNodes,
	}
}

// Set is an ordered set. All operations are those of the embedded tree;
// Add and Remove are shortcuts.
type Set[K any] struct {
	*rbtree.Tree[K, K]
}

// NewSet creates an empty set for naturally ordered keys.
func NewSet[K cmp.Ordered]() *Set[K] {
	s, err := NewSetFunc(cmp.Compare[K], 0)
	assert(err == nil, "NewSet: cannot create tree")
	return s
}

// NewSetFunc creates an empty set ordered by compare. maxNodes limits the
// number of elements; 0 means unlimited.
func NewSetFunc[K any](compare func(a, b K) int, maxNodes int) (*Set[K], error) {
	tree, err := rbtree.New(setConfig(compare, false, maxNodes))
	if err != nil {
		return nil, err
	}
	return &Set[K]{Tree: tree}, nil
}

// Add inserts k and reports whether it was not present before.
func (s *Set[K]) Add(k K) (bool, error) {
	_, inserted, err := s.Insert(k)
	return inserted, err
}

// Remove deletes k and reports whether it was present.
func (s *Set[K]) Remove(k K) bool {
	return s.EraseKey(k) > 0
}

// MultiSet is an ordered set permitting duplicates.
type MultiSet[K any] struct {
	*rbtree.Tree[K, K]
}

// NewMultiSet creates an empty multiset for naturally ordered keys.
func NewMultiSet[K cmp.Ordered]() *MultiSet[K] {
	s, err := NewMultiSetFunc(cmp.Compare[K], 0)
	assert(err == nil, "NewMultiSet: cannot create tree")
	return s
}

// NewMultiSetFunc creates an empty multiset ordered by compare. maxNodes
// limits the number of elements; 0 means unlimited.
func NewMultiSetFunc[K any](compare func(a, b K) int, maxNodes int) (*MultiSet[K], error) {
	tree, err := rbtree.New(setConfig(compare, true, maxNodes))
	if err != nil {
		return nil, err
	}
	return &MultiSet[K]{Tree: tree}, nil
}

// Add inserts another occurrence of k.
func (s *MultiSet[K]) Add(k K) error {
	_, _, err := s.Insert(k)
	return err
}

// Remove deletes all occurrences of k and returns their number.
func (s *MultiSet[K]) Remove(k K) int {
	return s.EraseKey(k)
}
