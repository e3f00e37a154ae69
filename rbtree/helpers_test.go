package rbtree

import (
	"cmp"
	"testing"
)

func makeIntTree(t testing.TB, multi bool) *Tree[int, int] {
	t.Helper()
	tree, err := New(SetConfig[int](multi))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func insertAll(t testing.TB, tree *Tree[int, int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		if _, _, err := tree.Insert(k); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
}

func collect[K, V any](tree *Tree[K, V]) []V {
	var out []V
	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustCheck[K, V any](t testing.TB, tree *Tree[K, V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func mustPanic(t testing.TB, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic")
		}
	}()
	f()
}

// seqItem carries an insertion sequence number to observe the order of
// equal keys.
type seqItem struct {
	key, seq int
}

func makeSeqTree(t testing.TB) *Tree[int, seqItem] {
	t.Helper()
	tree, err := New(Config[int, seqItem]{
		Compare: cmp.Compare[int],
		KeyOf:   func(it seqItem) int { return it.key },
		Multi:   true,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}
