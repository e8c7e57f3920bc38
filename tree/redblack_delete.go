// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/baltree/fault"
)

// Delete - remove a key, the error wraps fault.ErrKeyNotFound if it
// is not present
//
// nodes are moved rather than having keys copied, so handles to
// other nodes remain valid
func (t *RedBlack[K]) Delete(key K) error {
	z := t.search(key)
	if nilIndex == z {
		return fmt.Errorf("%w: %v", fault.ErrKeyNotFound, key)
	}

	// x takes the place of the node removed from the shape, it may be
	// absent so its parent is kept separately
	removed := t.colour(z)
	x := nilIndex
	xParent := nilIndex

	switch {
	case nilIndex == t.nodes[z].left:
		x = t.nodes[z].right
		xParent = t.nodes[z].up
		t.transplant(z, x)

	case nilIndex == t.nodes[z].right:
		x = t.nodes[z].left
		xParent = t.nodes[z].up
		t.transplant(z, x)

	default:
		y := t.first(t.nodes[z].right)
		removed = t.colour(y)
		x = t.nodes[y].right
		if z == t.nodes[y].up {
			xParent = y
		} else {
			xParent = t.nodes[y].up
			t.transplant(y, x)
			r := t.nodes[z].right
			t.nodes[y].right = r
			t.nodes[r].up = y
		}
		t.transplant(z, y)
		l := t.nodes[z].left
		t.nodes[y].left = l
		t.nodes[l].up = y
		t.setColour(y, t.colour(z))
	}

	t.freeNode(z)
	t.count -= 1

	if Black == removed {
		t.deleteFixup(x, xParent)
	}
	return nil
}

// internal: put v in the place of u, u's own links are not changed
func (t *RedBlack[K]) transplant(u uint32, v uint32) {
	up := t.nodes[u].up
	t.replaceChild(up, u, v)
	if nilIndex != v {
		t.nodes[v].up = up
	}
}

// internal: one Black node is missing on every path through x
func (t *RedBlack[K]) deleteFixup(x uint32, parent uint32) {
	for x != t.root && Black == t.colour(x) {
		if x == t.nodes[parent].left {
			s := t.nodes[parent].right

			if Red == t.colour(s) {
				t.setColour(s, Black)
				t.setColour(parent, Red)
				t.rotateLeft(parent)
				s = t.nodes[parent].right
			}

			if Black == t.colour(t.nodes[s].left) && Black == t.colour(t.nodes[s].right) {
				t.setColour(s, Red)
				x = parent
				parent = t.nodes[x].up
				continue
			}

			if Black == t.colour(t.nodes[s].right) {
				t.setColour(t.nodes[s].left, Black)
				t.setColour(s, Red)
				t.rotateRight(s)
				s = t.nodes[parent].right
			}

			t.setColour(s, t.colour(parent))
			t.setColour(parent, Black)
			t.setColour(t.nodes[s].right, Black)
			t.rotateLeft(parent)
			x = t.root
			parent = nilIndex

		} else {
			s := t.nodes[parent].left

			if Red == t.colour(s) {
				t.setColour(s, Black)
				t.setColour(parent, Red)
				t.rotateRight(parent)
				s = t.nodes[parent].left
			}

			if Black == t.colour(t.nodes[s].left) && Black == t.colour(t.nodes[s].right) {
				t.setColour(s, Red)
				x = parent
				parent = t.nodes[x].up
				continue
			}

			if Black == t.colour(t.nodes[s].left) {
				t.setColour(t.nodes[s].right, Black)
				t.setColour(s, Red)
				t.rotateLeft(s)
				s = t.nodes[parent].left
			}

			t.setColour(s, t.colour(parent))
			t.setColour(parent, Black)
			t.setColour(t.nodes[s].left, Black)
			t.rotateRight(parent)
			x = t.root
			parent = nilIndex
		}
	}
	t.setColour(x, Black)
}
