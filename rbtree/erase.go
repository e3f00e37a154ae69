package rbtree

// Erase removes the element at it and returns an iterator to the element
// following it. Only iterators to the erased element are invalidated.
//
// it must denote an element of t; End() or iterators of other trees are
// rejected with ErrInvalidIterator.
func (t *Tree[K, V]) Erase(it Iterator[V]) (Iterator[V], error) {
	if err := t.checkElement(it); err != nil {
		return t.End(), err
	}
	next := t.nodes.successor(it.at)
	t.extract(it.at)
	t.nodes.release(it.at)
	t.size--
	return t.iter(next), nil
}

// EraseKey removes all elements with key k and returns their count.
func (t *Tree[K, V]) EraseKey(k K) int {
	first, last := t.lowerBound(k), t.upperBound(k)
	if first == t.nodes.leftmost() && last == sentinel {
		n := t.size
		t.Clear()
		return n
	}
	n := 0
	for first != last {
		next := t.nodes.successor(first)
		t.extract(first)
		t.nodes.release(first)
		t.size--
		first = next
		n++
	}
	return n
}

// EraseRange removes the elements in the half-open range [first, last) and
// returns last. Erasing [Begin(), End()) tears down the whole tree in O(n)
// without rebalancing.
func (t *Tree[K, V]) EraseRange(first, last Iterator[V]) (Iterator[V], error) {
	if err := t.checkPosition(first); err != nil {
		return t.End(), err
	}
	if err := t.checkPosition(last); err != nil {
		return t.End(), err
	}
	if first.at == t.nodes.leftmost() && last.at == sentinel {
		tracer().Debugf("rbtree: erasing full range of %d elements", t.size)
		t.Clear()
		return t.End(), nil
	}
	var err error
	for first.at != last.at {
		if first.at == sentinel {
			// last does not follow first
			return t.End(), ErrInvalidIterator
		}
		if first, err = t.Erase(first); err != nil {
			return t.End(), err
		}
	}
	return last, nil
}

// extract unlinks node z from the tree and rebalances. z's slot is not
// released. If z has two children, its in-order successor is moved into z's
// structural position by relinking, so no value is copied and no other node
// changes identity.
func (t *Tree[K, V]) extract(z ref) {
	a := t.nodes
	s := a.sentinel()
	zn := a.at(z)
	y := z // node physically leaving its slot
	var x ref
	switch {
	case zn.left == sentinel:
		x = zn.right
	case zn.right == sentinel:
		x = zn.left
	default:
		y = a.minimum(zn.right)
		x = a.at(y).right
	}
	var xp ref // parent of x after unlinking
	if y == z {
		// at most one child: splice it into z's place
		xp = zn.parent
		if x != sentinel {
			a.at(x).parent = xp
		}
		t.replaceChild(xp, z, x)
		if s.left == z {
			if x == sentinel {
				s.left = xp
			} else {
				s.left = a.minimum(x)
			}
		}
		if s.right == z {
			if x == sentinel {
				s.right = xp
			} else {
				s.right = a.maximum(x)
			}
		}
	} else {
		// two children: lift successor y into z's place
		yn := a.at(y)
		a.at(zn.left).parent = y
		yn.left = zn.left
		if y == zn.right {
			xp = y
		} else {
			xp = yn.parent
			if x != sentinel {
				a.at(x).parent = xp
			}
			a.at(xp).left = x
			yn.right = zn.right
			a.at(zn.right).parent = y
		}
		t.replaceChild(zn.parent, z, y)
		yn.parent = zn.parent
		yn.color, zn.color = zn.color, yn.color
	}
	// zn.color is now the color of the removed slot
	if zn.color == black {
		t.eraseFixup(x, xp)
	}
}
