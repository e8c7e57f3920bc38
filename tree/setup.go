// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"fmt"
)

// Tree - the ordered binary tree shared by the balancing disciplines
//
// M is the per-node balancing data: a height for AVL or a colour for
// Red-Black.  The zero value is an empty tree.
type Tree[K cmp.Ordered, M fmt.Stringer] struct {
	nodes     []node[K, M] // arena, slot zero reserved
	pool      uint32       // linked list of reclaimed nodes
	freeNodes int          // number of nodes in the pool
	root      uint32
	count     int
}

// IsEmpty - true if tree contains no data
func (t *Tree[K, M]) IsEmpty() bool {
	return nilIndex == t.root
}

// Count - number of nodes currently in the tree
func (t *Tree[K, M]) Count() int {
	return t.count
}

// Clear - remove all nodes and release the arena
func (t *Tree[K, M]) Clear() {
	t.nodes = nil
	t.pool = nilIndex
	t.freeNodes = 0
	t.root = nilIndex
	t.count = 0
}

// Root - handle of the root node, nil handle for an empty tree
func (t *Tree[K, M]) Root() Handle[K] {
	return t.handle(t.root)
}

// internal: wrap an index as a handle
func (t *Tree[K, M]) handle(n uint32) Handle[K] {
	return Handle[K]{
		t: t,
		n: n,
	}
}

// internal: replace the child link of parent that points at old, a
// nil parent means old was the root
func (t *Tree[K, M]) replaceChild(parent uint32, old uint32, replacement uint32) {
	switch {
	case nilIndex == parent:
		t.root = replacement
	case old == t.nodes[parent].left:
		t.nodes[parent].left = replacement
	default:
		t.nodes[parent].right = replacement
	}
}

// internal: plain binary search tree insertion of a fresh leaf
//
// every node visited on the way down is appended to path if it is not
// nil, returns the index of the new leaf and false if the key was
// already present
func (t *Tree[K, M]) insert(key K, meta M, path *[]uint32) (uint32, bool) {
	parent := nilIndex
	p := t.root
	goLeft := false
	for nilIndex != p {
		if nil != path {
			*path = append(*path, p)
		}
		switch cmp.Compare(t.nodes[p].key, key) {
		case +1: // p.key > key
			parent, p, goLeft = p, t.nodes[p].left, true
		case -1: // p.key < key
			parent, p, goLeft = p, t.nodes[p].right, false
		default:
			return p, false
		}
	}

	n := t.newNode(key, meta)
	t.nodes[n].up = parent
	switch {
	case nilIndex == parent:
		t.root = n
	case goLeft:
		t.nodes[parent].left = n
	default:
		t.nodes[parent].right = n
	}
	t.count += 1
	return n, true
}

// internal: lowest node in a sub-tree
func (t *Tree[K, M]) first(n uint32) uint32 {
	if nilIndex == n {
		return nilIndex
	}
	for nilIndex != t.nodes[n].left {
		n = t.nodes[n].left
	}
	return n
}

// internal: highest node in a sub-tree
func (t *Tree[K, M]) last(n uint32) uint32 {
	if nilIndex == n {
		return nilIndex
	}
	for nilIndex != t.nodes[n].right {
		n = t.nodes[n].right
	}
	return n
}
