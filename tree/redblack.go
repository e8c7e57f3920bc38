// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
)

// Colour - the Red-Black balancing data
type Colour uint8

// node colours
const (
	Black Colour = iota
	Red   Colour = iota
)

// String - printable colour name
func (c Colour) String() string {
	if Red == c {
		return "Red"
	}
	return "Black"
}

// RedBlack - a colour balanced tree
type RedBlack[K cmp.Ordered] struct {
	Tree[K, Colour]
}

// NewRedBlack - create an initially empty Red-Black tree
func NewRedBlack[K cmp.Ordered]() *RedBlack[K] {
	return &RedBlack[K]{}
}

// Discipline - the balancing discipline of this tree
func (t *RedBlack[K]) Discipline() Discipline {
	return DisciplineRedBlack
}

// internal: an absent node is Black
func (t *RedBlack[K]) colour(n uint32) Colour {
	if nilIndex == n {
		return Black
	}
	return t.nodes[n].meta
}

// internal: recolouring the nil slot does nothing
func (t *RedBlack[K]) setColour(n uint32, c Colour) {
	if nilIndex != n {
		t.nodes[n].meta = c
	}
}

// Insert - add a new key, false if it was already present
func (t *RedBlack[K]) Insert(key K) bool {
	n, added := t.insert(key, Red, nil)
	if !added {
		return false
	}
	t.insertFixup(n)
	t.setColour(t.root, Black)
	return true
}

// internal: remove any red parent / red child pair starting at a new
// red node n
func (t *RedBlack[K]) insertFixup(n uint32) {
	for {
		p := t.nodes[n].up
		if Red != t.colour(p) {
			return
		}
		g := t.nodes[p].up // exists, a red node is never the root here

		if p == t.nodes[g].left {
			u := t.nodes[g].right
			if Red == t.colour(u) {
				t.setColour(p, Black)
				t.setColour(u, Black)
				t.setColour(g, Red)
				n = g
				continue
			}
			if n == t.nodes[p].right { // left-right
				n = p
				t.rotateLeft(n)
				p = t.nodes[n].up
			}
			t.setColour(p, Black)
			t.setColour(g, Red)
			t.rotateRight(g)
			return
		}

		u := t.nodes[g].left
		if Red == t.colour(u) {
			t.setColour(p, Black)
			t.setColour(u, Black)
			t.setColour(g, Red)
			n = g
			continue
		}
		if n == t.nodes[p].left { // right-left
			n = p
			t.rotateRight(n)
			p = t.nodes[n].up
		}
		t.setColour(p, Black)
		t.setColour(g, Red)
		t.rotateLeft(g)
		return
	}
}
