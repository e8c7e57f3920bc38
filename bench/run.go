// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
)

// Result - the figures for one discipline, order and size
type Result struct {
	Discipline string        `json:"discipline" yaml:"discipline"`
	Order      string        `json:"order" yaml:"order"`
	Size       int           `json:"size" yaml:"size"`
	Searches   int           `json:"searches" yaml:"searches"`
	Insert     time.Duration `json:"insert" yaml:"insert"`
	Search     time.Duration `json:"search" yaml:"search"`
	Delete     time.Duration `json:"delete" yaml:"delete"`
	Height     int           `json:"height" yaml:"height"`
	Leaves     int           `json:"leaves" yaml:"leaves"`
}

// Run - every combination in the configuration, stops at the first
// failure
func (r *Runner) Run(config Configuration) ([]Result, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}

	total := len(config.Disciplines) * len(config.Orders) * len(config.Sizes)
	var bar *progressbar.ProgressBar
	if nil != r.progress {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("benchmark"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]Result, 0, total)
	for _, name := range config.Disciplines {
		d, _ := tree.ParseDiscipline(name) // already validated
		for _, orderName := range config.Orders {
			order, _ := ParseOrder(orderName)
			for _, size := range config.Sizes {
				result, err := r.runOne(d, order, size, config)
				if nil != err {
					r.log.Errorf("%s %s %d: error: %s", d, order, size, err)
					return results, err
				}
				r.log.Infof("%s %s %d: insert: %s  search: %s  delete: %s  height: %d  leaves: %d",
					result.Discipline, result.Order, result.Size,
					result.Insert, result.Search, result.Delete,
					result.Height, result.Leaves)
				r.metrics.record(result)
				results = append(results, result)
				if nil != bar {
					_ = bar.Add(1)
				}
			}
		}
	}
	if nil != bar {
		_ = bar.Finish()
	}
	return results, nil
}

// internal: time one tree through insert, search and delete
func (r *Runner) runOne(d tree.Discipline, order Order, size int, config Configuration) (Result, error) {
	result := Result{
		Discipline: d.String(),
		Order:      order.String(),
		Size:       size,
		Searches:   size / config.SearchFraction,
	}

	keys, err := r.Workload(order, size, config.Seed)
	if nil != err {
		return result, err
	}
	idx, err := tree.New[int32](d)
	if nil != err {
		return result, err
	}

	start := time.Now()
	for _, k := range keys {
		idx.Insert(k)
	}
	result.Insert = time.Since(start)

	if err := idx.Check(); nil != err {
		return result, err
	}
	result.Height = idx.Height()
	result.Leaves = idx.CountLeaves()

	found := 0
	start = time.Now()
	for _, k := range keys[:result.Searches] {
		if idx.Contains(k) {
			found += 1
		}
	}
	result.Search = time.Since(start)
	if found != result.Searches {
		return result, fmt.Errorf("%w: found: %d of: %d", fault.ErrKeyNotFound, found, result.Searches)
	}

	start = time.Now()
	for _, k := range keys {
		if err := idx.Delete(k); nil != err {
			return result, fmt.Errorf("%w: %d", err, k)
		}
	}
	result.Delete = time.Since(start)

	if !idx.IsEmpty() {
		return result, fmt.Errorf("%w: %d nodes remain", fault.ErrCountMismatch, idx.Count())
	}
	return result, nil
}
