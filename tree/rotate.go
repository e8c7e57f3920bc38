// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/baltree/fault"
)

// internal: single left rotation about n, returns the new sub-tree root
//
//	   n               r
//	  / \             / \
//	 a   r    =>     n   c
//	    / \         / \
//	   b   c       a   b
func (t *Tree[K, M]) rotateLeft(n uint32) uint32 {
	if nilIndex == n || nilIndex == t.nodes[n].right {
		fault.Panicf("rotate left: node %d has no right child", n)
	}
	r := t.nodes[n].right

	b := t.nodes[r].left
	t.nodes[n].right = b
	if nilIndex != b {
		t.nodes[b].up = n
	}

	up := t.nodes[n].up
	t.nodes[r].up = up
	t.replaceChild(up, n, r)

	t.nodes[r].left = n
	t.nodes[n].up = r
	return r
}

// internal: single right rotation about n, returns the new sub-tree root
//
//	     n           l
//	    / \         / \
//	   l   c  =>   a   n
//	  / \             / \
//	 a   b           b   c
func (t *Tree[K, M]) rotateRight(n uint32) uint32 {
	if nilIndex == n || nilIndex == t.nodes[n].left {
		fault.Panicf("rotate right: node %d has no left child", n)
	}
	l := t.nodes[n].left

	b := t.nodes[l].right
	t.nodes[n].left = b
	if nilIndex != b {
		t.nodes[b].up = n
	}

	up := t.nodes[n].up
	t.nodes[l].up = up
	t.replaceChild(up, n, l)

	t.nodes[l].right = n
	t.nodes[n].up = l
	return l
}
