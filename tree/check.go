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

// CheckUp - check the up pointers for consistency
func (t *Tree[K, M]) CheckUp() bool {
	return nil == t.checkUp(t.root, nilIndex)
}

// internal: consistency checker
func (t *Tree[K, M]) checkUp(n uint32, up uint32) error {
	if nilIndex == n {
		return nil
	}
	p := t.nodes[n]
	if p.up != up {
		return fmt.Errorf("%w at key: %v", fault.ErrBrokenParentLink, p.key)
	}
	if err := t.checkUp(p.left, n); nil != err {
		return err
	}
	return t.checkUp(p.right, n)
}

// internal: parent links, strictly increasing keys and node count
func (t *Tree[K, M]) checkStructure() error {
	if err := t.checkUp(t.root, nilIndex); nil != err {
		return err
	}

	count := 0
	var previous K
	var err error
	t.Walk(OrderIn, func(key K) bool {
		if count > 0 && cmp.Compare(previous, key) >= 0 {
			err = fmt.Errorf("%w at key: %v", fault.ErrKeyOrder, key)
			return false
		}
		previous = key
		count += 1
		return true
	})
	if nil != err {
		return err
	}

	if count != t.count {
		return fmt.Errorf("%w: counted: %d  expected: %d", fault.ErrCountMismatch, count, t.count)
	}
	return nil
}
