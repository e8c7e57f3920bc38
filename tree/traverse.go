// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Order - the visiting order for Walk
type Order int

// visiting orders
const (
	OrderIn   Order = iota // left, node, right
	OrderPre  Order = iota // node, left, right
	OrderPost Order = iota // left, right, node
)

// Walk - call fn for each key in the given order, stop as soon as fn
// returns false
func (t *Tree[K, M]) Walk(order Order, fn func(key K) bool) {
	t.walk(t.root, order, fn)
}

// internal: recursive descent, false means stop
func (t *Tree[K, M]) walk(n uint32, order Order, fn func(key K) bool) bool {
	if nilIndex == n {
		return true
	}
	p := t.nodes[n]
	if OrderPre == order && !fn(p.key) {
		return false
	}
	if !t.walk(p.left, order, fn) {
		return false
	}
	if OrderIn == order && !fn(p.key) {
		return false
	}
	if !t.walk(p.right, order, fn) {
		return false
	}
	if OrderPost == order && !fn(p.key) {
		return false
	}
	return true
}

// InOrder - all keys in increasing order
func (t *Tree[K, M]) InOrder() []K {
	return t.collect(OrderIn)
}

// PreOrder - all keys, each node before its sub-trees
func (t *Tree[K, M]) PreOrder() []K {
	return t.collect(OrderPre)
}

// PostOrder - all keys, each node after its sub-trees
func (t *Tree[K, M]) PostOrder() []K {
	return t.collect(OrderPost)
}

func (t *Tree[K, M]) collect(order Order) []K {
	keys := make([]K, 0, t.count)
	t.Walk(order, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
func (t *Tree[K, M]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, M]) height(n uint32) int {
	if nilIndex == n {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}

// CountLeaves - number of nodes with no children
func (t *Tree[K, M]) CountLeaves() int {
	return t.countLeaves(t.root)
}

func (t *Tree[K, M]) countLeaves(n uint32) int {
	if nilIndex == n {
		return 0
	}
	p := t.nodes[n]
	if nilIndex == p.left && nilIndex == p.right {
		return 1
	}
	return t.countLeaves(p.left) + t.countLeaves(p.right)
}
