// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
)

// Branch - the position of a node relative to its parent
type Branch int

// node positions
const (
	BranchRoot  Branch = iota
	BranchLeft  Branch = iota
	BranchRight Branch = iota
)

// String - printable branch name
func (b Branch) String() string {
	switch b {
	case BranchRoot:
		return "root"
	case BranchLeft:
		return "left"
	case BranchRight:
		return "right"
	default:
		return fmt.Sprintf("branch(%d)", int(b))
	}
}

// MarshalText - for JSON and YAML output
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (t *Tree[K, M]) Print(w io.Writer) int {
	return t.printTree(w, t.root, "", BranchRoot)
}

// internal print - returns the maximum depth of the sub-tree
func (t *Tree[K, M]) printTree(w io.Writer, n uint32, prefix string, br Branch) int {
	if nilIndex == n {
		return 0
	}
	p := t.nodes[n]
	rd := 0
	ld := 0
	if nilIndex != p.right {
		s := "       "
		if BranchLeft == br {
			s = "|      "
		}
		rd = t.printTree(w, p.right, prefix+s, BranchRight)
	}
	switch br {
	case BranchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case BranchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case BranchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if nilIndex == p.up {
		fmt.Fprintf(w, "%v ^- [%s]\n", p.key, p.meta)
	} else {
		fmt.Fprintf(w, "%v ^%v [%s]\n", p.key, t.nodes[p.up].key, p.meta)
	}
	if nilIndex != p.left {
		s := "       "
		if BranchRight == br {
			s = "|      "
		}
		ld = t.printTree(w, p.left, prefix+s, BranchLeft)
	}
	return 1 + max(rd, ld)
}
