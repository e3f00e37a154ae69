package rbtree

import (
	"cmp"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{KeyOf: Identity[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing compare, got %v", err)
	}
	_, err = New(Config[int, int]{Compare: cmp.Compare[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing key projection, got %v", err)
	}
	cfg := SetConfig[int](false)
	cfg.MaxNodes = -1
	if _, err = New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative node limit, got %v", err)
	}
}

func TestNewStoresConfig(t *testing.T) {
	tree := makeIntTree(t, true)
	cfg := tree.Config()
	if cfg.Compare == nil || cfg.KeyOf == nil || !cfg.Multi {
		t.Fatalf("unexpected effective config: %+v", cfg)
	}
	if cfg.MaxNodes != maxNodes {
		t.Fatalf("expected unlimited node count to normalize to %d, is %d", maxNodes, cfg.MaxNodes)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := makeIntTree(t, false)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("unexpected empty tree state len=%d", tree.Len())
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Fatalf("expected Begin() == End() for empty tree")
	}
	if !tree.Find(1).IsEnd() || !tree.LowerBound(1).IsEnd() || !tree.UpperBound(1).IsEnd() {
		t.Fatalf("expected searches in empty tree to yield End()")
	}
	if _, ok := tree.Min(); ok {
		t.Fatalf("expected no minimum in empty tree")
	}
	if !tree.RBegin().IsEnd() {
		t.Fatalf("expected RBegin() to be at reverse end for empty tree")
	}
}

func TestInsertRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := makeIntTree(t, false)
	insertAll(t, tree, 5, 3, 8, 1, 4, 7, 9)
	mustCheck(t, tree)
	want := []int{1, 3, 4, 5, 7, 8, 9}
	if got := collect(tree); !equalSlices(got, want) {
		t.Fatalf("in-order walk: got %v, want %v", got, want)
	}
	if n := tree.EraseKey(5); n != 1 {
		t.Fatalf("expected to erase 1 element, erased %d", n)
	}
	mustCheck(t, tree)
	if tree.Contains(5) || tree.Len() != 6 {
		t.Fatalf("expected 5 to be gone, len=%d", tree.Len())
	}
	if _, ok, err := tree.Insert(5); !ok || err != nil {
		t.Fatalf("re-insert of 5 failed: ok=%v err=%v", ok, err)
	}
	mustCheck(t, tree)
	if got := collect(tree); !equalSlices(got, want) || tree.Len() != len(want) {
		t.Fatalf("after round-trip: got %v (len %d), want %v", got, tree.Len(), want)
	}
}

func TestUniqueRejectsDuplicate(t *testing.T) {
	tree := makeIntTree(t, false)
	first, ok, _ := tree.Insert(10)
	if !ok {
		t.Fatalf("first insert of 10 rejected")
	}
	if _, ok, _ = tree.Insert(20); !ok {
		t.Fatalf("insert of 20 rejected")
	}
	it, ok, err := tree.Insert(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected second insert of 10 to return false")
	}
	if !it.Equal(first) || it.Value() != 10 {
		t.Fatalf("expected iterator to existing element 10")
	}
	if tree.Len() != 2 {
		t.Fatalf("expected size 2, is %d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestMultiKeepsDuplicates(t *testing.T) {
	tree := makeIntTree(t, true)
	for _, k := range []int{10, 20, 10} {
		if _, ok, err := tree.Insert(k); !ok || err != nil {
			t.Fatalf("insert %d: ok=%v err=%v", k, ok, err)
		}
	}
	if tree.Len() != 3 {
		t.Fatalf("expected size 3, is %d", tree.Len())
	}
	first, last := tree.EqualRange(10)
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		if it.Value() != 10 {
			t.Fatalf("equal range contains %d", it.Value())
		}
		n++
	}
	if n != 2 || tree.Count(10) != 2 {
		t.Fatalf("expected equal range of 2 elements, has %d (count %d)", n, tree.Count(10))
	}
	if last.Value() != 20 {
		t.Fatalf("expected equal range to end at 20, ends at %d", last.Value())
	}
	mustCheck(t, tree)
}

func TestMultiAppendsEqualKeysLast(t *testing.T) {
	tree := makeSeqTree(t)
	items := []seqItem{{1, 0}, {2, 1}, {1, 2}, {0, 3}, {1, 4}, {1, 5}, {2, 6}}
	for _, item := range items {
		if _, _, err := tree.Insert(item); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	mustCheck(t, tree)
	var seqs []int
	for v := range tree.Range(1, 2) {
		seqs = append(seqs, v.seq)
	}
	if !equalSlices(seqs, []int{0, 2, 4, 5}) {
		t.Fatalf("equal keys not in insertion order: %v", seqs)
	}
	if it := tree.Find(1); it.Value().seq != 0 {
		t.Fatalf("expected Find to return first of equal keys, got seq %d", it.Value().seq)
	}
	if v, _ := tree.Max(); v.seq != 6 {
		t.Fatalf("expected last inserted 2 as maximum, got %+v", v)
	}
}

func TestBounds(t *testing.T) {
	tree := makeIntTree(t, false)
	insertAll(t, tree, 10, 20, 30, 40)
	type tc struct {
		key, lower, upper int // 0 means End()
	}
	cases := []tc{
		{key: 5, lower: 10, upper: 10},
		{key: 10, lower: 10, upper: 20},
		{key: 15, lower: 20, upper: 20},
		{key: 40, lower: 40, upper: 0},
		{key: 45, lower: 0, upper: 0},
	}
	value := func(it Iterator[int]) int {
		if it.IsEnd() {
			return 0
		}
		return it.Value()
	}
	for _, c := range cases {
		if got := value(tree.LowerBound(c.key)); got != c.lower {
			t.Errorf("LowerBound(%d) = %d, want %d", c.key, got, c.lower)
		}
		if got := value(tree.UpperBound(c.key)); got != c.upper {
			t.Errorf("UpperBound(%d) = %d, want %d", c.key, got, c.upper)
		}
	}
	if !tree.Find(15).IsEnd() {
		t.Errorf("expected Find(15) to yield End()")
	}
	if v, ok := tree.Get(30); !ok || v != 30 {
		t.Errorf("expected Get(30) to find 30")
	}
}

func TestInsertHintAdjacent(t *testing.T) {
	tree := makeIntTree(t, false)
	insertAll(t, tree, 10, 20, 30)
	// before hint
	it, ok, err := tree.InsertHint(tree.Find(20), 15)
	if !ok || err != nil || it.Value() != 15 {
		t.Fatalf("hinted insert of 15 failed: ok=%v err=%v", ok, err)
	}
	// at the end
	if _, ok, _ = tree.InsertHint(tree.End(), 40); !ok {
		t.Fatalf("hinted insert of 40 at end failed")
	}
	// before begin
	if _, ok, _ = tree.InsertHint(tree.Begin(), 5); !ok {
		t.Fatalf("hinted insert of 5 at begin failed")
	}
	// after hint
	if _, ok, _ = tree.InsertHint(tree.Find(30), 35); !ok {
		t.Fatalf("hinted insert of 35 after 30 failed")
	}
	// wrong hint falls back
	if _, ok, _ = tree.InsertHint(tree.Begin(), 25); !ok {
		t.Fatalf("hinted insert of 25 with distant hint failed")
	}
	// duplicate
	dup, ok, _ := tree.InsertHint(tree.Find(10), 10)
	if ok || dup.Value() != 10 {
		t.Fatalf("expected duplicate 10 to be rejected")
	}
	mustCheck(t, tree)
	want := []int{5, 10, 15, 20, 25, 30, 35, 40}
	if got := collect(tree); !equalSlices(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInsertHintMulti(t *testing.T) {
	tree := makeSeqTree(t)
	for i, k := range []int{1, 2, 2, 3} {
		if _, _, err := tree.Insert(seqItem{k, i}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	hint := tree.UpperBound(2) // at 3
	if _, _, err := tree.InsertHint(hint, seqItem{2, 9}); err != nil {
		t.Fatalf("hinted insert failed: %v", err)
	}
	mustCheck(t, tree)
	var seqs []int
	for v := range tree.Range(2, 3) {
		seqs = append(seqs, v.seq)
	}
	if !equalSlices(seqs, []int{1, 2, 9}) {
		t.Fatalf("expected hinted 2 after existing 2s, got %v", seqs)
	}
}

func TestInsertRange(t *testing.T) {
	tree := makeIntTree(t, false)
	n, err := tree.InsertRange(1, 2, 3, 4, 5, 6, 7, 8, 3, 0)
	if err != nil {
		t.Fatalf("InsertRange failed: %v", err)
	}
	if n != 9 || tree.Len() != 9 {
		t.Fatalf("expected 9 inserted elements, got n=%d len=%d", n, tree.Len())
	}
	mustCheck(t, tree)
}

func TestAllocationFailureLeavesTreeUnchanged(t *testing.T) {
	cfg := SetConfig[int](false)
	cfg.MaxNodes = 3
	tree, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	insertAll(t, tree, 2, 1, 3)
	it, ok, err := tree.Insert(4)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if ok || !it.IsEnd() {
		t.Fatalf("expected failed insert to return End(), false")
	}
	mustCheck(t, tree)
	if got := collect(tree); !equalSlices(got, []int{1, 2, 3}) {
		t.Fatalf("tree changed by failed insert: %v", got)
	}
	// a duplicate does not need a node
	if _, ok, err = tree.Insert(2); ok || err != nil {
		t.Fatalf("expected plain rejection of duplicate, got ok=%v err=%v", ok, err)
	}
	// erasing frees a slot for reuse
	tree.EraseKey(1)
	if _, ok, err = tree.Insert(4); !ok || err != nil {
		t.Fatalf("expected insert after erase to succeed: ok=%v err=%v", ok, err)
	}
	n, err := tree.InsertRange(5, 6)
	if n != 0 || !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected InsertRange to stop at allocation failure, n=%d err=%v", n, err)
	}
	mustCheck(t, tree)
}

func TestComparatorPanicLeavesTreeUnchanged(t *testing.T) {
	armed := false
	tree, err := New(Config[int, int]{
		Compare: func(a, b int) int {
			if armed && (a == 6 || b == 6) {
				panic("cannot compare 6")
			}
			return cmp.Compare(a, b)
		},
		KeyOf: Identity[int],
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	insertAll(t, tree, 5, 3, 8, 1, 4, 7, 9)
	hint := tree.Find(7)
	armed = true
	mustPanic(t, func() { tree.Insert(6) })
	mustPanic(t, func() { tree.InsertHint(hint, 6) })
	armed = false
	mustCheck(t, tree)
	if got := collect(tree); tree.Len() != 7 || !equalSlices(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Fatalf("tree changed by panicking comparator: len=%d content=%v", tree.Len(), got)
	}
	if _, ok, err := tree.InsertHint(hint, 6); !ok || err != nil {
		t.Fatalf("expected insert of 6 to succeed afterwards: ok=%v err=%v", ok, err)
	}
	mustCheck(t, tree)
}

func TestClearKeepsEndValid(t *testing.T) {
	tree := makeIntTree(t, false)
	insertAll(t, tree, 3, 1, 2)
	end := tree.End()
	tree.Clear()
	mustCheck(t, tree)
	if tree.Len() != 0 || !tree.Begin().Equal(end) {
		t.Fatalf("expected empty tree with Begin() == old End()")
	}
	insertAll(t, tree, 7)
	if !end.Prev().Equal(tree.Begin()) || end.Prev().Value() != 7 {
		t.Fatalf("expected old End() to still work after Clear")
	}
}

func TestSwap(t *testing.T) {
	a := makeIntTree(t, false)
	b := makeIntTree(t, true)
	insertAll(t, a, 1, 2, 3)
	insertAll(t, b, 9, 9)
	it := a.Find(2)
	a.Swap(b)
	if a.Len() != 2 || !a.IsMulti() || b.Len() != 3 || b.IsMulti() {
		t.Fatalf("swap did not exchange contents")
	}
	if !it.Equal(b.Find(2)) || it.Value() != 2 {
		t.Fatalf("iterator did not follow its element to the other tree")
	}
	mustCheck(t, a)
	mustCheck(t, b)
}

func TestCloneIsIndependent(t *testing.T) {
	tree := makeIntTree(t, false)
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7)
	clone := tree.Clone()
	mustCheck(t, clone)
	clone.EraseKey(4)
	insertAll(t, clone, 8)
	if got := collect(tree); !equalSlices(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("original changed by clone mutation: %v", got)
	}
	if got := collect(clone); !equalSlices(got, []int{1, 2, 3, 5, 6, 7, 8}) {
		t.Fatalf("unexpected clone content: %v", got)
	}
	mustCheck(t, tree)
	mustCheck(t, clone)
}
