// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
)

// Entry - one node of a structural dump
type Entry[K cmp.Ordered] struct {
	Key       K      `json:"key" yaml:"key"`
	Parent    K      `json:"parent" yaml:"parent"`
	HasParent bool   `json:"hasParent" yaml:"has_parent"`
	Depth     int    `json:"depth" yaml:"depth"`
	Branch    Branch `json:"branch" yaml:"branch"`
	Meta      string `json:"meta" yaml:"meta"`
}

// Dump - every node from right to left: right sub-tree, node, left
// sub-tree, which is the order Print displays them
func (t *Tree[K, M]) Dump() []Entry[K] {
	entries := make([]Entry[K], 0, t.count)
	return t.dump(entries, t.root, 0, BranchRoot)
}

func (t *Tree[K, M]) dump(entries []Entry[K], n uint32, depth int, br Branch) []Entry[K] {
	if nilIndex == n {
		return entries
	}
	p := t.nodes[n]
	entries = t.dump(entries, p.right, depth+1, BranchRight)

	e := Entry[K]{
		Key:    p.key,
		Depth:  depth,
		Branch: br,
		Meta:   p.meta.String(),
	}
	if nilIndex != p.up {
		e.Parent = t.nodes[p.up].key
		e.HasParent = true
	}
	entries = append(entries, e)

	return t.dump(entries, p.left, depth+1, BranchLeft)
}
