// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/baltree/fault"
)

// Delete - remove a key, the error wraps fault.ErrKeyNotFound if it
// is not present
func (t *AVL[K]) Delete(key K) error {
	path := t.path[:0]
	defer func() { t.path = path[:0] }()

	z := t.root
search:
	for nilIndex != z {
		switch cmp.Compare(t.nodes[z].key, key) {
		case +1: // z.key > key
			path = append(path, z)
			z = t.nodes[z].left
		case -1: // z.key < key
			path = append(path, z)
			z = t.nodes[z].right
		default:
			break search
		}
	}
	if nilIndex == z {
		return fmt.Errorf("%w: %v", fault.ErrKeyNotFound, key)
	}

	// two children: take the successor's key and remove the successor
	victim := z
	if nilIndex != t.nodes[z].left && nilIndex != t.nodes[z].right {
		path = append(path, z)
		s := t.nodes[z].right
		for nilIndex != t.nodes[s].left {
			path = append(path, s)
			s = t.nodes[s].left
		}
		t.nodes[z].key = t.nodes[s].key
		victim = s
	}

	// victim has at most one child
	child := t.nodes[victim].left
	if nilIndex == child {
		child = t.nodes[victim].right
	}
	up := t.nodes[victim].up
	if nilIndex != child {
		t.nodes[child].up = up
	}
	t.replaceChild(up, victim, child)

	t.freeNode(victim)
	t.count -= 1

	t.rebalance(path)
	return nil
}
