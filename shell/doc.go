// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - numbered text menus to build and inspect a tree
//
// The main menu creates an AVL or Red-Black tree, the tree menu then
// adds, deletes and displays keys.  Commands may be given by number
// or by name and keys may follow on the same line:
//
//	insert 4 5 8
//	delete 5
//	print
package shell
