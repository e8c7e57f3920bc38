// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"fmt"
	"math"

	"github.com/bitmark-inc/baltree/fault"
)

// a zero link means no node, slot zero of the arena is never written
const nilIndex uint32 = 0

// a node in the tree
type node[K cmp.Ordered, M fmt.Stringer] struct {
	left  uint32 // left sub-tree
	right uint32 // right sub-tree
	up    uint32 // points to parent node (or next free node when pooled)
	key   K      // key part for ordering
	meta  M      // height or colour depending on discipline
}

// allocate a new node, reuses reclaimed nodes if any are available
func (t *Tree[K, M]) newNode(key K, meta M) uint32 {
	if 0 == len(t.nodes) {
		t.nodes = make([]node[K, M], 1, 64) // reserve the nil slot
	}
	if nilIndex == t.pool {
		if 0 != t.freeNodes {
			fault.Panicf("pool corrupt: %d free nodes but empty list", t.freeNodes)
		}
		if uint64(len(t.nodes)) >= math.MaxUint32 {
			fault.Panicf("arena full: %d nodes", len(t.nodes))
		}
		t.nodes = append(t.nodes, node[K, M]{
			key:  key,
			meta: meta,
		})
		return uint32(len(t.nodes) - 1)
	}
	n := t.pool
	p := &t.nodes[n]
	t.pool = p.up
	p.key = key
	p.meta = meta
	p.left = nilIndex
	p.right = nilIndex
	p.up = nilIndex // ensure freelist pointer is cleared
	t.freeNodes -= 1
	return n
}

// reclaim a node and keep it in a pool
func (t *Tree[K, M]) freeNode(n uint32) {
	var zeroKey K
	var zeroMeta M

	p := &t.nodes[n]
	p.up = t.pool // use as free list pointer
	p.left = nilIndex
	p.right = nilIndex
	p.key = zeroKey
	p.meta = zeroMeta
	t.freeNodes += 1

	t.pool = n
}
