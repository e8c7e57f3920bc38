// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/baltree/tree"
	"github.com/bitmark-inc/baltree/util"
)

// Index - the tree operations used by the menus
type Index interface {
	Insert(key int32) bool
	Delete(key int32) error
	Contains(key int32) bool
	IsEmpty() bool
	Count() int
	Height() int
	CountLeaves() int
	InOrder() []int32
	PreOrder() []int32
	PostOrder() []int32
	Dump() []tree.Entry[int32]
	Check() error
	Discipline() tree.Discipline
}

// Factory - creates an empty tree for the menus
type Factory func(d tree.Discipline) (Index, error)

// NewTree - the default factory
func NewTree(d tree.Discipline) (Index, error) {
	idx, err := tree.New[int32](d)
	if nil != err {
		return nil, err
	}
	return idx, nil
}

// Shell - holds the input and output streams
type Shell struct {
	log     *logger.L
	in      *bufio.Scanner
	out     io.Writer
	colour  util.Colouriser
	factory Factory
}

// New - create a shell reading commands from in and writing to out
func New(log *logger.L, in io.Reader, out io.Writer, colour bool, factory Factory) *Shell {
	if nil == factory {
		factory = NewTree
	}
	return &Shell{
		log:     log,
		in:      bufio.NewScanner(in),
		out:     out,
		colour:  util.NewColouriser(colour),
		factory: factory,
	}
}

const mainMenu = `Enter command:
1: Create AVL tree
2: Create Red Black tree
3: Quit`

// Run - the main menu, returns at quit or end of input
//
// if initial is a valid discipline that tree is opened first
func (s *Shell) Run(initial tree.Discipline) error {
	if tree.DisciplineNone != initial {
		if quit, err := s.openTree(initial); nil != err || quit {
			return err
		}
	}

	for {
		s.println(mainMenu)
		words, ok := s.readWords()
		if !ok {
			return s.in.Err()
		}
		if 0 == len(words) {
			continue
		}

		d := tree.DisciplineNone
		switch strings.ToLower(words[0]) {
		case "1", "avl":
			d = tree.DisciplineAVL
		case "2", "rb", "redblack", "red-black":
			d = tree.DisciplineRedBlack
		case "3", "quit", "q", "exit":
			s.println("Quit")
			return nil
		default:
			s.println("Invalid input, try again!")
			continue
		}

		quit, err := s.openTree(d)
		if nil != err || quit {
			return err
		}
	}
}

// internal: create a tree and run its menu, true if input ended
func (s *Shell) openTree(d tree.Discipline) (bool, error) {
	idx, err := s.factory(d)
	if nil != err {
		s.log.Errorf("create %s tree error: %s", d, err)
		return true, err
	}
	util.LogInfo(s.log, util.CoGreen, fmt.Sprintf("created %s tree", d))
	switch d {
	case tree.DisciplineRedBlack:
		s.println("Red Black Tree Created!")
	default:
		s.println("AVL Tree Created!")
	}
	return s.treeMenu(idx), nil
}

// internal: read the next line split into words, false at end of input
func (s *Shell) readWords() ([]string, bool) {
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		words, err := shellwords.Parse(line)
		if nil != err {
			s.log.Debugf("parse: %q  error: %s", line, err)
			s.println("Invalid input, try again!")
			continue
		}
		return words, true
	}
	return nil, false
}

func (s *Shell) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}
