// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - self balancing ordered key indexes built on a common
// binary search tree with parent links to allow iteration through the
// nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Two balancing disciplines are provided: AVL (height based) and
// Red-Black (colour based).  Both share the node arena, search,
// traversal, rotation, iteration and diagnostic printing of the
// underlying Tree.
//
// Nodes are held in a per-tree arena and linked by index, slot zero
// is never used so that a zero link means "no node".  Deleted nodes
// are kept in a pool for reuse by later inserts.
//
// Keys are unique: inserting an existing key does nothing and returns
// false.
package tree
