// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
	"github.com/bitmark-inc/baltree/util"
)

const treeMenuFormat = `Enter command:
1: Add Key to %[1]s
2: Delete Key from %[1]s
3: Find the number of leaves
4: Find the height of tree
5: Print In-Order Tree
6: Print Pre-Order Tree
7: Print Post-Order Tree
8: Check if Tree is empty
9: Print Tree Structure
10: Exit to Main Menu`

const extraCommands = `Other commands:
search KEY...      : report whether keys are present
count              : number of keys
check              : verify the balance rules
dump [json|yaml]   : every node with its parent and depth
help               : this text
Keys may follow a command on the same line: insert 4 5 8`

// internal: the tree menu, true if input ended
func (s *Shell) treeMenu(idx Index) bool {
	menu := fmt.Sprintf(treeMenuFormat, shortName(idx.Discipline()))
	for {
		s.println(menu)
		words, ok := s.readWords()
		if !ok {
			return true
		}
		if 0 == len(words) {
			continue
		}

		command := strings.ToLower(words[0])
		arguments := words[1:]
		util.LogDebug(s.log, util.CoCyan, fmt.Sprintf("command: %q  arguments: %q", command, arguments))

		switch command {
		case "1", "insert", "add":
			s.insert(idx, arguments)
		case "2", "delete", "del":
			s.delete(idx, arguments)
		case "3", "leaves":
			s.printf("The number of leaves is: %d\n", idx.CountLeaves())
		case "4", "height":
			s.printf("The height of the tree is: %d\n", idx.Height())
		case "5", "inorder":
			s.printf("The tree when in-order is: %s\n", formatKeys(idx.InOrder()))
		case "6", "preorder":
			s.printf("The tree when pre-order is: %s\n", formatKeys(idx.PreOrder()))
		case "7", "postorder":
			s.printf("The tree when post-order is: %s\n", formatKeys(idx.PostOrder()))
		case "8", "empty":
			s.printf("Checking if tree is empty: %t\n", idx.IsEmpty())
		case "9", "print":
			s.println("Printing Tree:")
			s.println()
			s.printStructure(idx)
		case "10", "back":
			s.println("Returning to Main Menu.")
			return false
		case "search", "find":
			s.search(idx, arguments)
		case "count":
			s.printf("The number of keys is: %d\n", idx.Count())
		case "check":
			s.check(idx)
		case "dump":
			s.dump(idx, arguments)
		case "help", "?":
			s.println(extraCommands)
		default:
			s.println("Invalid input, try again!")
		}
	}
}

// internal: keys from the command line or prompt for them
func (s *Shell) keys(arguments []string, prompt string) ([]int32, bool) {
	if 0 == len(arguments) {
		s.println(prompt)
		words, ok := s.readWords()
		if !ok {
			return nil, false
		}
		arguments = words
	}
	if 0 == len(arguments) {
		s.println("Please enter a valid integer.")
		return nil, true
	}

	keys := make([]int32, 0, len(arguments))
	for _, a := range arguments {
		k, err := strconv.ParseInt(a, 10, 32)
		if nil != err {
			s.log.Debugf("key: %q  error: %s", a, fault.ErrInvalidKey)
			s.println("Please enter a valid integer.")
			continue
		}
		keys = append(keys, int32(k))
	}
	return keys, true
}

func (s *Shell) insert(idx Index, arguments []string) {
	keys, _ := s.keys(arguments, "Enter Key to Insert: ")
	for _, k := range keys {
		if idx.Contains(k) {
			s.log.Debugf("%s insert: %d  error: %s", idx.Discipline(), k, fault.ErrKeyExists)
			s.println("Key already exists")
			continue
		}
		idx.Insert(k)
		s.log.Infof("%s insert: %d", idx.Discipline(), k)
		s.printf("Key %d inserted.\n", k)
	}
}

func (s *Shell) delete(idx Index, arguments []string) {
	keys, _ := s.keys(arguments, "Enter Key to Delete: ")
	for _, k := range keys {
		if !idx.Contains(k) {
			s.println("Key does not exist")
			continue
		}
		if err := idx.Delete(k); nil != err {
			s.log.Errorf("%s delete: %d  error: %s", idx.Discipline(), k, err)
			s.printf("Key %d not deleted: %s\n", k, err)
			continue
		}
		s.log.Infof("%s delete: %d", idx.Discipline(), k)
		s.printf("Key %d deleted.\n", k)
	}
}

func (s *Shell) search(idx Index, arguments []string) {
	keys, _ := s.keys(arguments, "Enter Key to Search: ")
	for _, k := range keys {
		if idx.Contains(k) {
			s.printf("Key %d found.\n", k)
		} else {
			s.println("Key does not exist")
		}
	}
}

func (s *Shell) check(idx Index) {
	if err := idx.Check(); nil != err {
		util.LogWarn(s.log, util.CoYellow, fmt.Sprintf("%s check failed: %s", idx.Discipline(), err))
		s.printf("Tree check failed: %s\n", err)
		return
	}
	s.printf("Tree is a valid %s tree with %d keys.\n", idx.Discipline().Title(), idx.Count())
}

func (s *Shell) dump(idx Index, arguments []string) {
	format := "json"
	if len(arguments) > 0 {
		format = strings.ToLower(arguments[0])
	}

	entries := idx.Dump()
	switch format {
	case "json":
		b, err := json.MarshalIndent(entries, "", "  ")
		if nil != err {
			s.printf("dump error: %s\n", err)
			return
		}
		s.println(string(b))
	case "yaml":
		b, err := yaml.Marshal(entries)
		if nil != err {
			s.printf("dump error: %s\n", err)
			return
		}
		s.printf("%s", b)
	default:
		s.println("Invalid format, use json or yaml")
	}
}

// internal: one node per line, right sub-tree first, ten columns per
// level
func (s *Shell) printStructure(idx Index) {
	rb := tree.DisciplineRedBlack == idx.Discipline()
	for _, e := range idx.Dump() {
		prefix := "Root: "
		switch {
		case tree.BranchLeft == e.Branch && rb:
			prefix = "L: "
		case tree.BranchLeft == e.Branch:
			prefix = "Left: "
		case tree.BranchRight == e.Branch && rb:
			prefix = "R: "
		case tree.BranchRight == e.Branch:
			prefix = "Right: "
		}
		text := fmt.Sprintf("%s%d", prefix, e.Key)

		switch {
		case rb && s.colour.Enabled():
			colour := util.CoBlack
			if tree.Red.String() == e.Meta {
				colour = util.CoRed
			}
			text = s.colour.Paint(colour, text)
		case rb:
			text += " [" + e.Meta + "]"
		default:
			text += " (height " + e.Meta + ")"
		}
		s.println(strings.Repeat(" ", 10*e.Depth) + text)
	}
}

// format as: [1, 2, 3]
func formatKeys(keys []int32) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(int(k))
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func shortName(d tree.Discipline) string {
	if tree.DisciplineRedBlack == d {
		return "RBT"
	}
	return "AVL"
}
