// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/shell"
	"github.com/bitmark-inc/baltree/shell/mocks"
	"github.com/bitmark-inc/baltree/tree"
)

// run a scripted session and return everything written
func runSession(t *testing.T, script string, colour bool, initial tree.Discipline, factory shell.Factory) (string, error) {
	out := &bytes.Buffer{}
	s := shell.New(logger.New(logCategory), strings.NewReader(script), out, colour, factory)
	err := s.Run(initial)
	return out.String(), err
}

func assertContains(t *testing.T, output string, expected ...string) {
	for _, e := range expected {
		assert.True(t, strings.Contains(output, e), "missing: %q", e)
	}
}

func TestAVLSession(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	script := strings.Join([]string{
		"1",
		"insert 4 5 8",
		"insert 5",
		"1",
		"11",
		"inorder",
		"2",
		"abc",
		"leaves",
		"height",
		"empty",
		"9",
		"wibble",
		"10",
		"3",
	}, "\n") + "\n"

	output, err := runSession(t, script, false, tree.DisciplineNone, nil)
	assert.Nil(t, err)

	assertContains(t, output,
		"1: Create AVL tree\n2: Create Red Black tree\n3: Quit\n",
		"AVL Tree Created!\n",
		"1: Add Key to AVL\n",
		"Key 4 inserted.\nKey 5 inserted.\nKey 8 inserted.\n",
		"Key already exists\n",
		"Enter Key to Insert: \nKey 11 inserted.\n",
		"The tree when in-order is: [4, 5, 8, 11]\n",
		"Enter Key to Delete: \nPlease enter a valid integer.\n",
		"The number of leaves is: 2\n",
		"The height of the tree is: 3\n",
		"Checking if tree is empty: false\n",
		"Printing Tree:\n\n"+
			"                    Right: 11 (height 1)\n"+
			"          Right: 8 (height 2)\n"+
			"Root: 5 (height 3)\n"+
			"          Left: 4 (height 1)\n",
		"Invalid input, try again!\n",
		"Returning to Main Menu.\n",
		"Quit\n",
	)
}

func TestRedBlackSessionColour(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	script := "rb\nadd 2 1 3\nprint\npreorder\npostorder\ndelete 1\ndelete 1\nsearch 2 1\ncount\ncheck\nback\nquit\n"
	output, err := runSession(t, script, true, tree.DisciplineNone, nil)
	assert.Nil(t, err)

	assertContains(t, output,
		"Red Black Tree Created!\n",
		"1: Add Key to RBT\n",
		"          \x1b[31mR: 3\x1b[0m\n"+
			"\x1b[30mRoot: 2\x1b[0m\n"+
			"          \x1b[31mL: 1\x1b[0m\n",
		"The tree when pre-order is: [2, 1, 3]\n",
		"The tree when post-order is: [1, 3, 2]\n",
		"Key 1 deleted.\nEnter command:",
		"Key does not exist\n",
		"Key 2 found.\nKey does not exist\n",
		"The number of keys is: 2\n",
		"Tree is a valid Red-Black tree with 2 keys.\n",
		"Quit\n",
	)
}

func TestRedBlackSessionPlain(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	output, err := runSession(t, "insert 2 1 3\nprint\nback\n3\n", false, tree.DisciplineRedBlack, nil)
	assert.Nil(t, err)

	assertContains(t, output,
		"Red Black Tree Created!\n",
		"          R: 3 [Red]\n"+
			"Root: 2 [Black]\n"+
			"          L: 1 [Red]\n",
	)
	assert.False(t, strings.Contains(output, "\x1b["), "colour codes in plain output")
}

func TestDump(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	output, err := runSession(t, "insert 2 1\ndump\ndump yaml\ndump xml\n", false, tree.DisciplineAVL, nil)
	assert.Nil(t, err)

	assertContains(t, output,
		`"key": 2,`,
		`"branch": "root",`,
		`"hasParent": true,`,
		"- key: 2\n",
		"  branch: root\n",
		"  branch: left\n",
		"Invalid format, use json or yaml\n",
	)
}

func TestEndOfInput(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	output, err := runSession(t, "1\ninsert\n", false, tree.DisciplineNone, nil)
	assert.Nil(t, err)
	assertContains(t, output, "Enter Key to Insert: \n")
	assert.False(t, strings.Contains(output, "Quit"))

	output, err = runSession(t, "", false, tree.DisciplineNone, nil)
	assert.Nil(t, err)
	assertContains(t, output, "3: Quit\n")
}

func TestQuotedArguments(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	output, err := runSession(t, "insert \"7\" '9'\ninsert \"unterminated\ninorder\n", false, tree.DisciplineAVL, nil)
	assert.Nil(t, err)
	assertContains(t, output,
		"Key 7 inserted.\nKey 9 inserted.\n",
		"Invalid input, try again!\n",
		"The tree when in-order is: [7, 9]\n",
	)
}

func TestFactoryError(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	factory := func(d tree.Discipline) (shell.Index, error) {
		return nil, fault.ErrInvalidDiscipline
	}
	_, err := runSession(t, "1\n", false, tree.DisciplineNone, factory)
	assert.Equal(t, fault.ErrInvalidDiscipline, err)
}

// duplicate and absent keys must never reach the tree
func TestMockDuplicateAndAbsent(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockIndex(ctl)

	m.EXPECT().Discipline().Return(tree.DisciplineAVL).AnyTimes()
	m.EXPECT().Contains(int32(4)).Return(true).Times(1)
	m.EXPECT().Insert(gomock.Any()).Times(0)
	m.EXPECT().Contains(int32(9)).Return(false).Times(1)
	m.EXPECT().Delete(gomock.Any()).Times(0)

	factory := func(d tree.Discipline) (shell.Index, error) {
		assert.Equal(t, tree.DisciplineAVL, d)
		return m, nil
	}
	output, err := runSession(t, "avl\ninsert 4\ndelete 9\nback\nquit\n", false, tree.DisciplineNone, factory)
	assert.Nil(t, err)
	assertContains(t, output, "Key already exists\n", "Key does not exist\n")
}

func TestMockInsertAndDelete(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockIndex(ctl)

	m.EXPECT().Discipline().Return(tree.DisciplineRedBlack).AnyTimes()
	gomock.InOrder(
		m.EXPECT().Contains(int32(6)).Return(false),
		m.EXPECT().Insert(int32(6)).Return(true),
		m.EXPECT().Contains(int32(6)).Return(true),
		m.EXPECT().Delete(int32(6)).Return(fault.ErrKeyNotFound),
		m.EXPECT().Check().Return(fault.ErrRedRoot),
	)

	factory := func(d tree.Discipline) (shell.Index, error) {
		return m, nil
	}
	output, err := runSession(t, "insert 6\ndelete 6\ncheck\n", false, tree.DisciplineRedBlack, factory)
	assert.Nil(t, err)
	assertContains(t, output,
		"Key 6 inserted.\n",
		"Key 6 not deleted: key not found\n",
		"Tree check failed: root is red\n",
	)
}
