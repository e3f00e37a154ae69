package rbtree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - in-order keys are ascending (non-decreasing for multi-key trees),
//   - the root is Black,
//   - no Red node has a Red child,
//   - all paths to the sentinel carry the same number of Black nodes,
//   - the sentinel caches the leftmost and rightmost nodes,
//   - the element count matches the number of reachable nodes,
//   - parent links are consistent with child links.
//
// Check is meant for tests and debugging; it walks the entire tree.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.nodes == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolated)
	}
	err := t.check()
	if err != nil {
		tracer().Errorf("rbtree: %v", err)
	}
	return err
}

func (t *Tree[K, V]) check() error {
	a := t.nodes
	s := a.sentinel()
	if s.color != black {
		return fmt.Errorf("%w: sentinel is not black", ErrInvariantViolated)
	}
	root := a.root()
	if root == sentinel {
		if s.left != sentinel || s.right != sentinel {
			return fmt.Errorf("%w: empty tree caches extremities", ErrInvariantViolated)
		}
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariantViolated, t.size)
		}
		return nil
	}
	if a.at(root).color != black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	if a.at(root).parent != sentinel {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolated)
	}
	count, _, err := t.checkNode(root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size is %d, tree holds %d nodes", ErrInvariantViolated, t.size, count)
	}
	if count != a.live {
		return fmt.Errorf("%w: arena holds %d nodes, tree %d", ErrInvariantViolated, a.live, count)
	}
	if s.left != a.minimum(root) {
		return fmt.Errorf("%w: stale leftmost cache", ErrInvariantViolated)
	}
	if s.right != a.maximum(root) {
		return fmt.Errorf("%w: stale rightmost cache", ErrInvariantViolated)
	}
	return t.checkOrder()
}

// checkNode audits the subtree at r and returns its node count and
// black-height.
func (t *Tree[K, V]) checkNode(r ref) (count int, blackHeight int, err error) {
	if r == sentinel {
		return 0, 0, nil
	}
	a := t.nodes
	n := a.at(r)
	if n.stamp == 0 {
		return 0, 0, fmt.Errorf("%w: released node %d is linked", ErrInvariantViolated, r)
	}
	for _, child := range []ref{n.left, n.right} {
		if child == sentinel {
			continue
		}
		if a.at(child).parent != r {
			return 0, 0, fmt.Errorf("%w: broken parent link at node %d", ErrInvariantViolated, child)
		}
		if n.color == red && a.at(child).color == red {
			return 0, 0, fmt.Errorf("%w: red node %d has a red child", ErrInvariantViolated, r)
		}
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: black-height mismatch at node %d (%d != %d)",
			ErrInvariantViolated, r, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lc + rc + 1, lh, nil
}

func (t *Tree[K, V]) checkOrder() error {
	a := t.nodes
	prev := a.leftmost()
	for r := a.successor(prev); r != sentinel; r = a.successor(r) {
		p, k := t.key(prev), t.key(r)
		if t.less(k, p) {
			return fmt.Errorf("%w: keys out of order at node %d", ErrInvariantViolated, r)
		}
		if !t.cfg.Multi && !t.less(p, k) {
			return fmt.Errorf("%w: duplicate key at node %d", ErrInvariantViolated, r)
		}
		prev = r
	}
	return nil
}
