// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - timing and verification harness for the balanced
// trees
//
// A run builds a tree for every combination of discipline, key order
// and size, times inserting all the keys, searching a fraction of
// them and deleting them all again.  Results are logged, returned and
// kept as gauges in a private prometheus registry.
package bench
