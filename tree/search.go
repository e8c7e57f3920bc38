// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
)

// Search - find a specific key
func (t *Tree[K, M]) Search(key K) (Handle[K], bool) {
	n := t.search(key)
	return t.handle(n), nilIndex != n
}

// Contains - true if the key is present
func (t *Tree[K, M]) Contains(key K) bool {
	return nilIndex != t.search(key)
}

// internal: index of the node holding key or nil
func (t *Tree[K, M]) search(key K) uint32 {
	p := t.root
	for nilIndex != p {
		switch cmp.Compare(t.nodes[p].key, key) {
		case +1: // p.key > key
			p = t.nodes[p].left
		case -1: // p.key < key
			p = t.nodes[p].right
		default:
			return p
		}
	}
	return nilIndex
}
