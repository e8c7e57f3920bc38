// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"strconv"
)

// the AVL balancing data: nodes in the longest path down to a leaf,
// the nil slot always holds zero
type height int32

func (h height) String() string {
	return strconv.Itoa(int(h))
}

// AVL - a height balanced tree
type AVL[K cmp.Ordered] struct {
	Tree[K, height]
	path []uint32 // ancestors of the node being changed
}

// NewAVL - create an initially empty AVL tree
func NewAVL[K cmp.Ordered]() *AVL[K] {
	return &AVL[K]{}
}

// Discipline - the balancing discipline of this tree
func (t *AVL[K]) Discipline() Discipline {
	return DisciplineAVL
}

// Insert - add a new key, false if it was already present
func (t *AVL[K]) Insert(key K) bool {
	path := t.path[:0]
	_, added := t.insert(key, 1, &path)
	if added {
		t.rebalance(path)
	}
	t.path = path
	return added
}

// internal: balance every node of the path from the deepest upwards
//
// a rotation puts the new sub-tree root in place of the old one, so
// the remaining path entries are still the ancestors
func (t *AVL[K]) rebalance(path []uint32) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		t.balance(path[i])
	}
}

// internal: restore the height rule at n, returns the sub-tree root
func (t *AVL[K]) balance(n uint32) uint32 {
	t.updateHeight(n)

	switch diff := t.balanceFactor(n); {
	case diff > 1: // left heavy
		l := t.nodes[n].left
		if t.balanceFactor(l) < 0 { // left-right
			t.rotateLeft(l)
		}
		return t.rotateRight(n)

	case diff < -1: // right heavy
		r := t.nodes[n].right
		if t.balanceFactor(r) > 0 { // right-left
			t.rotateRight(r)
		}
		return t.rotateLeft(n)

	default:
		return n
	}
}

// internal: height(left) - height(right)
func (t *AVL[K]) balanceFactor(n uint32) int {
	p := t.nodes[n]
	return int(t.nodes[p.left].meta) - int(t.nodes[p.right].meta)
}

// internal: recompute a node's height from its children
func (t *AVL[K]) updateHeight(n uint32) {
	p := &t.nodes[n]
	p.meta = 1 + max(t.nodes[p.left].meta, t.nodes[p.right].meta)
}

// internal: rotations also repair the heights of the two moved nodes,
// the old root is now the lower one so it goes first
func (t *AVL[K]) rotateLeft(n uint32) uint32 {
	r := t.Tree.rotateLeft(n)
	t.updateHeight(n)
	t.updateHeight(r)
	return r
}

func (t *AVL[K]) rotateRight(n uint32) uint32 {
	l := t.Tree.rotateRight(n)
	t.updateHeight(n)
	t.updateHeight(l)
	return l
}
