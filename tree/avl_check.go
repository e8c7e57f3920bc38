// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/baltree/fault"
)

// Check - verify ordering, parent links, node count, stored heights
// and the height balance of every node
func (t *AVL[K]) Check() error {
	if err := t.checkStructure(); nil != err {
		return err
	}
	_, err := t.checkHeight(t.root)
	return err
}

// internal: returns the actual height of the sub-tree
func (t *AVL[K]) checkHeight(n uint32) (int, error) {
	if nilIndex == n {
		return 0, nil
	}
	p := t.nodes[n]
	lh, err := t.checkHeight(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := t.checkHeight(p.right)
	if nil != err {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if h != int(p.meta) {
		return 0, fmt.Errorf("%w at key: %v  stored: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.meta, h)
	}
	if diff := lh - rh; diff > 1 || diff < -1 {
		return 0, fmt.Errorf("%w at key: %v  left: %d  right: %d", fault.ErrUnbalanced, p.key, lh, rh)
	}
	return h, nil
}
