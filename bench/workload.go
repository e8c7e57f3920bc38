// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bitmark-inc/baltree/fault"
)

// Order - the sequence keys are presented in
type Order int

// key orders
const (
	Ascending  Order = iota
	Descending Order = iota
	Random     Order = iota
)

// String - name as accepted by ParseOrder
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder - convert a name to an order
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	case "random", "rand":
		return Random, nil
	default:
		return Ascending, fault.ErrInvalidWorkloadOrder
	}
}

// Workload - the keys 1..size in the given order, generated once and
// then served from the cache
//
// callers must not modify the returned slice
func (r *Runner) Workload(order Order, size int, seed int64) ([]int32, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", fault.ErrInvalidBenchmarkSize, size)
	}

	cacheKey := fmt.Sprintf("%s:%d:%d", order, size, seed)
	if keys, found := r.workloads.Get(cacheKey); found {
		return keys.([]int32), nil
	}

	keys := make([]int32, size)
	switch order {
	case Ascending:
		for i := range keys {
			keys[i] = int32(i + 1)
		}
	case Descending:
		for i := range keys {
			keys[i] = int32(size - i)
		}
	case Random:
		for i, k := range rand.New(rand.NewSource(seed)).Perm(size) {
			keys[i] = int32(k + 1)
		}
	default:
		return nil, fault.ErrInvalidWorkloadOrder
	}

	r.log.Debugf("generated workload: %s  size: %d  seed: %d", order, size, seed)
	r.workloads.Set(cacheKey, keys, workloadExpiry)
	return keys, nil
}
