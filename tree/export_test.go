// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// ArenaSize - slots allocated in the arena including the nil slot
func (t *Tree[K, M]) ArenaSize() int {
	return len(t.nodes)
}

// PoolSize - reclaimed slots waiting for reuse
func (t *Tree[K, M]) PoolSize() int {
	return t.freeNodes
}

// RotateLeftAt - plain rotation at the node holding key
func (t *Tree[K, M]) RotateLeftAt(key K) {
	t.rotateLeft(t.search(key))
}

// RotateRightAt - plain rotation at the node holding key
func (t *Tree[K, M]) RotateRightAt(key K) {
	t.rotateRight(t.search(key))
}

// SetKeyAt - overwrite a key to corrupt the ordering
func (t *Tree[K, M]) SetKeyAt(key K, newKey K) {
	t.nodes[t.search(key)].key = newKey
}

// SetParentAt - corrupt the up link of a node
func (t *Tree[K, M]) SetParentAt(key K, parent K) {
	t.nodes[t.search(key)].up = t.search(parent)
}

// SetHeightAt - corrupt a stored height
func (t *AVL[K]) SetHeightAt(key K, h int) {
	t.nodes[t.search(key)].meta = height(h)
}

// SetColourAt - corrupt a colour
func (t *RedBlack[K]) SetColourAt(key K, c Colour) {
	t.nodes[t.search(key)].meta = c
}
