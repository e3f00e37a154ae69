package rbtree

// Rotations and fixups operate on arena refs. The sentinel is Black and is
// never recolored, so color tests on leaf links need no special casing.
// The sentinel's parent link holds the root and must only be written when
// the root changes.

func (t *Tree[K, V]) rotateLeft(x ref) {
	a := t.nodes
	xn := a.at(x)
	y := xn.right
	yn := a.at(y)
	xn.right = yn.left
	if yn.left != sentinel {
		a.at(yn.left).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

func (t *Tree[K, V]) rotateRight(x ref) {
	a := t.nodes
	xn := a.at(x)
	y := xn.left
	yn := a.at(y)
	xn.left = yn.right
	if yn.right != sentinel {
		a.at(yn.right).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// replaceChild makes with take the place of child old below parent. A
// parent of sentinel means old is the root.
func (t *Tree[K, V]) replaceChild(parent, old, with ref) {
	a := t.nodes
	if parent == sentinel {
		a.sentinel().parent = with
		return
	}
	if p := a.at(parent); p.left == old {
		p.left = with
	} else {
		p.right = with
	}
}

// insertFixup restores the red-black properties after x has been linked in
// as a Red leaf.
func (t *Tree[K, V]) insertFixup(x ref) {
	a := t.nodes
	for a.at(a.at(x).parent).color == red {
		p := a.at(x).parent
		g := a.at(p).parent
		if p == a.at(g).left {
			u := a.at(g).right
			if a.at(u).color == red {
				a.at(p).color = black
				a.at(u).color = black
				a.at(g).color = red
				x = g
				continue
			}
			if x == a.at(p).right {
				x = p
				t.rotateLeft(x)
				p = a.at(x).parent
			}
			a.at(p).color = black
			a.at(g).color = red
			t.rotateRight(g)
		} else {
			u := a.at(g).left
			if a.at(u).color == red {
				a.at(p).color = black
				a.at(u).color = black
				a.at(g).color = red
				x = g
				continue
			}
			if x == a.at(p).left {
				x = p
				t.rotateRight(x)
				p = a.at(x).parent
			}
			a.at(p).color = black
			a.at(g).color = red
			t.rotateLeft(g)
		}
	}
	a.at(a.root()).color = black
}

// eraseFixup restores uniform black-height after a Black node has been
// removed. x is the node which took the removed slot (possibly the
// sentinel), xp is its parent. xp is tracked separately because the
// sentinel's parent link must keep pointing to the root.
func (t *Tree[K, V]) eraseFixup(x, xp ref) {
	a := t.nodes
	for x != a.root() && a.at(x).color == black {
		if x == a.at(xp).left {
			w := a.at(xp).right
			if a.at(w).color == red {
				a.at(w).color = black
				a.at(xp).color = red
				t.rotateLeft(xp)
				w = a.at(xp).right
			}
			assert(w != sentinel, "erase fixup: missing sibling")
			wn := a.at(w)
			if a.at(wn.left).color == black && a.at(wn.right).color == black {
				wn.color = red
				x = xp
				xp = a.at(x).parent
				continue
			}
			if a.at(wn.right).color == black {
				a.at(wn.left).color = black
				wn.color = red
				t.rotateRight(w)
				w = a.at(xp).right
				wn = a.at(w)
			}
			wn.color = a.at(xp).color
			a.at(xp).color = black
			a.at(wn.right).color = black
			t.rotateLeft(xp)
			break
		}
		w := a.at(xp).left
		if a.at(w).color == red {
			a.at(w).color = black
			a.at(xp).color = red
			t.rotateRight(xp)
			w = a.at(xp).left
		}
		assert(w != sentinel, "erase fixup: missing sibling")
		wn := a.at(w)
		if a.at(wn.right).color == black && a.at(wn.left).color == black {
			wn.color = red
			x = xp
			xp = a.at(x).parent
			continue
		}
		if a.at(wn.left).color == black {
			a.at(wn.right).color = black
			wn.color = red
			t.rotateLeft(w)
			w = a.at(xp).left
			wn = a.at(w)
		}
		wn.color = a.at(xp).color
		a.at(xp).color = black
		a.at(wn.left).color = black
		t.rotateRight(xp)
		break
	}
	if x != sentinel {
		a.at(x).color = black
	}
}
