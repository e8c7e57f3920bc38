// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/baltree/fault"
)

// Check - verify ordering, parent links, node count and the colour
// rules: black root, no red node with a red child and the same number
// of black nodes on every path down to a nil
func (t *RedBlack[K]) Check() error {
	if err := t.checkStructure(); nil != err {
		return err
	}
	if Red == t.colour(t.root) {
		return fmt.Errorf("%w at key: %v", fault.ErrRedRoot, t.nodes[t.root].key)
	}
	_, err := t.checkColour(t.root)
	return err
}

// internal: returns the black height of the sub-tree including n
func (t *RedBlack[K]) checkColour(n uint32) (int, error) {
	if nilIndex == n {
		return 1, nil
	}
	p := t.nodes[n]
	if Red == p.meta && (Red == t.colour(p.left) || Red == t.colour(p.right)) {
		return 0, fmt.Errorf("%w at key: %v", fault.ErrRedRedViolation, p.key)
	}
	lb, err := t.checkColour(p.left)
	if nil != err {
		return 0, err
	}
	rb, err := t.checkColour(p.right)
	if nil != err {
		return 0, err
	}
	if lb != rb {
		return 0, fmt.Errorf("%w at key: %v  left: %d  right: %d", fault.ErrBlackHeightMismatch, p.key, lb, rb)
	}
	if Black == p.meta {
		return 1 + lb, nil
	}
	return lb, nil
}

// BlackHeight - number of black nodes on any path from the root down
// to a nil, not counting the nil
func (t *RedBlack[K]) BlackHeight() int {
	h := 0
	for n := t.root; nilIndex != n; n = t.nodes[n].left {
		if Black == t.colour(n) {
			h += 1
		}
	}
	return h
}
