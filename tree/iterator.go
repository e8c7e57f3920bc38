// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
)

// access to the links of a tree without knowing its balancing data
type linker[K cmp.Ordered] interface {
	links(n uint32) (left uint32, right uint32, up uint32)
	keyAt(n uint32) K
	metaAt(n uint32) string
	first(n uint32) uint32
	last(n uint32) uint32
}

// Handle - a reference to a node in a tree
//
// A handle stays valid until its node is deleted.  Deleting from an
// AVL tree may move the key of the in-order successor into the node
// being deleted, so a handle to that successor is also invalidated.
type Handle[K cmp.Ordered] struct {
	t linker[K]
	n uint32
}

// IsNil - true if the handle refers to no node
func (h Handle[K]) IsNil() bool {
	return nil == h.t || nilIndex == h.n
}

// Key - the key of the node, zero value for a nil handle
func (h Handle[K]) Key() K {
	if h.IsNil() {
		var zero K
		return zero
	}
	return h.t.keyAt(h.n)
}

// Meta - the balancing data of the node as text: height for AVL,
// colour for Red-Black
func (h Handle[K]) Meta() string {
	if h.IsNil() {
		return ""
	}
	return h.t.metaAt(h.n)
}

// Parent - return parent node of a node
func (h Handle[K]) Parent() Handle[K] {
	if h.IsNil() {
		return h
	}
	_, _, up := h.t.links(h.n)
	return Handle[K]{t: h.t, n: up}
}

// Depth - get the depth of a node, the root is at depth zero
func (h Handle[K]) Depth() int {
	if h.IsNil() {
		return 0
	}
	count := 0
	_, _, up := h.t.links(h.n)
	for nilIndex != up {
		count += 1
		_, _, up = h.t.links(up)
	}
	return count
}

// Next - given a node, return the node with the next highest key
// value or a nil handle if no more nodes
func (h Handle[K]) Next() Handle[K] {
	if h.IsNil() {
		return h
	}
	n := h.n
	_, right, up := h.t.links(n)
	if nilIndex != right {
		return Handle[K]{t: h.t, n: h.t.first(right)}
	}
	for nilIndex != up {
		left, _, next := h.t.links(up)
		if n == left {
			break
		}
		n, up = up, next
	}
	return Handle[K]{t: h.t, n: up}
}

// Prev - given a node, return the node with the next lowest key
// value or a nil handle if no more nodes
func (h Handle[K]) Prev() Handle[K] {
	if h.IsNil() {
		return h
	}
	n := h.n
	left, _, up := h.t.links(n)
	if nilIndex != left {
		return Handle[K]{t: h.t, n: h.t.last(left)}
	}
	for nilIndex != up {
		_, right, next := h.t.links(up)
		if n == right {
			break
		}
		n, up = up, next
	}
	return Handle[K]{t: h.t, n: up}
}

// First - return the node with the lowest key value
func (t *Tree[K, M]) First() Handle[K] {
	return t.handle(t.first(t.root))
}

// Last - return the node with the highest key value
func (t *Tree[K, M]) Last() Handle[K] {
	return t.handle(t.last(t.root))
}

func (t *Tree[K, M]) links(n uint32) (uint32, uint32, uint32) {
	p := &t.nodes[n]
	return p.left, p.right, p.up
}

func (t *Tree[K, M]) keyAt(n uint32) K {
	return t.nodes[n].key
}

func (t *Tree[K, M]) metaAt(n uint32) string {
	return t.nodes[n].meta.String()
}
