// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"io"
	"strings"

	"github.com/bitmark-inc/baltree/fault"
)

// Discipline - the balancing rule a tree keeps for its whole life
type Discipline int

// balancing disciplines
const (
	DisciplineNone     Discipline = iota
	DisciplineAVL      Discipline = iota
	DisciplineRedBlack Discipline = iota
)

// String - short name as accepted by ParseDiscipline
func (d Discipline) String() string {
	switch d {
	case DisciplineAVL:
		return "avl"
	case DisciplineRedBlack:
		return "rb"
	default:
		return "none"
	}
}

// Title - long name for display
func (d Discipline) Title() string {
	switch d {
	case DisciplineAVL:
		return "AVL"
	case DisciplineRedBlack:
		return "Red-Black"
	default:
		return "None"
	}
}

// ParseDiscipline - convert a name to a discipline
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avl":
		return DisciplineAVL, nil
	case "rb", "redblack", "red-black":
		return DisciplineRedBlack, nil
	default:
		return DisciplineNone, fault.ErrInvalidDiscipline
	}
}

// Index - the operations common to both balanced trees
type Index[K cmp.Ordered] interface {
	Insert(key K) bool
	Delete(key K) error
	Search(key K) (Handle[K], bool)
	Contains(key K) bool

	IsEmpty() bool
	Count() int
	Height() int
	CountLeaves() int
	Clear()

	Walk(order Order, fn func(key K) bool)
	InOrder() []K
	PreOrder() []K
	PostOrder() []K
	First() Handle[K]
	Last() Handle[K]
	Root() Handle[K]

	Dump() []Entry[K]
	Print(w io.Writer) int
	CheckUp() bool
	Check() error
	Discipline() Discipline
}

// check that both trees satisfy the interface
var (
	_ Index[int] = (*AVL[int])(nil)
	_ Index[int] = (*RedBlack[int])(nil)
)

// New - create an empty tree of the given discipline
func New[K cmp.Ordered](d Discipline) (Index[K], error) {
	switch d {
	case DisciplineAVL:
		return NewAVL[K](), nil
	case DisciplineRedBlack:
		return NewRedBlack[K](), nil
	default:
		return nil, fault.ErrInvalidDiscipline
	}
}
