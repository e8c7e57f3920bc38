// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench_test

import (
	"bytes"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/baltree/bench"
	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
)

func TestParseOrder(t *testing.T) {
	items := []struct {
		name  string
		order bench.Order
		ok    bool
	}{
		{"ascending", bench.Ascending, true},
		{"ASC", bench.Ascending, true},
		{"descending", bench.Descending, true},
		{"random", bench.Random, true},
		{"sideways", bench.Ascending, false},
	}
	for i, item := range items {
		order, err := bench.ParseOrder(item.name)
		if item.ok {
			assert.Nil(t, err, "%d: %q", i, item.name)
			assert.Equal(t, item.order, order, "%d: %q", i, item.name)
			assert.Equal(t, order, mustParseOrder(t, order.String()), "%d: round trip", i)
		} else {
			assert.Equal(t, fault.ErrInvalidWorkloadOrder, err, "%d: %q", i, item.name)
		}
	}
}

func mustParseOrder(t *testing.T, s string) bench.Order {
	order, err := bench.ParseOrder(s)
	if nil != err {
		t.Fatalf("parse order: %q  error: %s", s, err)
	}
	return order
}

func TestWorkload(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := bench.New(logger.New(logCategory), nil)

	keys, err := r.Workload(bench.Ascending, 5, 0)
	assert.Nil(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, keys)

	keys, err = r.Workload(bench.Descending, 5, 0)
	assert.Nil(t, err)
	assert.Equal(t, []int32{5, 4, 3, 2, 1}, keys)

	keys, err = r.Workload(bench.Random, 100, 42)
	assert.Nil(t, err)
	sorted := append([]int32{}, keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, k := range sorted {
		if int32(i+1) != k {
			t.Fatalf("random workload is not a permutation at: %d  key: %d", i, k)
		}
	}

	// second request is served from the cache
	again, err := r.Workload(bench.Random, 100, 42)
	assert.Nil(t, err)
	assert.True(t, &keys[0] == &again[0], "workload was regenerated")

	other, err := r.Workload(bench.Random, 100, 43)
	assert.Nil(t, err)
	assert.NotEqual(t, keys, other, "seed ignored")

	_, err = r.Workload(bench.Ascending, 0, 0)
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
}

func TestDefaultConfiguration(t *testing.T) {
	config := bench.DefaultConfiguration()
	assert.Equal(t, []int{10000, 40000, 70000, 100000, 130000}, config.Sizes)
	assert.Equal(t, []string{"ascending"}, config.Orders)
	assert.Equal(t, []string{"avl", "rb"}, config.Disciplines)
	assert.Equal(t, 10, config.SearchFraction)
	assert.Nil(t, config.Validate())

	config.Sizes = []int{5}
	config.SetDefaults()
	assert.Equal(t, []int{5}, config.Sizes, "set defaults replaced a list")
}

func TestValidate(t *testing.T) {
	items := []struct {
		change   func(c *bench.Configuration)
		expected error
	}{
		{func(c *bench.Configuration) { c.Sizes = []int{10, -1} }, fault.ErrInvalidBenchmarkSize},
		{func(c *bench.Configuration) { c.SearchFraction = 0 }, fault.ErrInvalidSearchFraction},
		{func(c *bench.Configuration) { c.Orders = []string{"up"} }, fault.ErrInvalidWorkloadOrder},
		{func(c *bench.Configuration) { c.Disciplines = []string{"splay"} }, fault.ErrInvalidDiscipline},
	}

	for i, item := range items {
		config := bench.DefaultConfiguration()
		item.change(&config)
		err := config.Validate()
		assert.True(t, errors.Is(err, item.expected), "%d: error: %v", i, err)
	}
}

func TestRun(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	progress := &bytes.Buffer{}
	r := bench.New(logger.New(logCategory), progress)

	config := bench.Configuration{
		Sizes:          []int{100, 250},
		Orders:         []string{"ascending", "random"},
		Disciplines:    []string{"avl", "rb"},
		SearchFraction: 10,
		Seed:           7,
	}
	results, err := r.Run(config)
	assert.Nil(t, err)
	assert.Equal(t, 8, len(results))
	assert.NotEqual(t, 0, progress.Len(), "no progress output")

	for _, result := range results {
		assert.Equal(t, result.Size/10, result.Searches)
		assert.True(t, result.Leaves > 0)

		n := float64(result.Size)
		switch result.Discipline {
		case tree.DisciplineAVL.String():
			assert.True(t, float64(result.Height) <= math.Ceil(1.44*math.Log2(n+2)), "avl height: %d", result.Height)
		case tree.DisciplineRedBlack.String():
			assert.True(t, float64(result.Height) <= 2*math.Log2(n+1), "rb height: %d", result.Height)
		default:
			t.Errorf("unexpected discipline: %q", result.Discipline)
		}
	}

	assert.Equal(t, "avl", results[0].Discipline)
	assert.Equal(t, "ascending", results[0].Order)
	assert.Equal(t, 100, results[0].Size)
	assert.Equal(t, 7, results[0].Height)

	buffer := &bytes.Buffer{}
	assert.Nil(t, r.WriteMetrics(buffer))
	text := buffer.String()
	assert.True(t, strings.Contains(text, "# TYPE baltree_bench_insert_seconds gauge"), "metrics: %s", text)
	assert.True(t, strings.Contains(text, `baltree_bench_height{discipline="avl",order="ascending",size="100"} 7`), "metrics: %s", text)
	assert.True(t, strings.Contains(text, `baltree_bench_leaves{discipline="rb",order="random",size="250"}`), "metrics: %s", text)
}

func TestRunInvalid(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := bench.New(logger.New(logCategory), nil)
	config := bench.DefaultConfiguration()
	config.Sizes = []int{0}

	results, err := r.Run(config)
	assert.Nil(t, results)
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
}

func TestVerify(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := bench.New(logger.New(logCategory), nil)
	for _, d := range []tree.Discipline{tree.DisciplineAVL, tree.DisciplineRedBlack} {
		v, err := r.Verify(d, 3000, 11)
		if nil != err {
			t.Fatalf("%s: verify error: %s", d, err)
		}
		assert.Equal(t, d.String(), v.Discipline)
		assert.Equal(t, 3000, v.Inserted+v.Duplicates+v.Deleted+v.Missing)
		assert.Equal(t, v.Inserted-v.Deleted, v.Count)
	}

	_, err := r.Verify(tree.DisciplineAVL, 0, 1)
	assert.Equal(t, true, fault.IsErrInvalid(err))

	_, err = r.Verify(tree.DisciplineNone, 10, 1)
	assert.Equal(t, fault.ErrInvalidDiscipline, err)
}
