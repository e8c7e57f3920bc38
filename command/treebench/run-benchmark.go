// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/baltree/bench"
	"github.com/bitmark-inc/baltree/fault"
)

func runBenchmark(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config := m.config.Benchmark
	if s := c.String("sizes"); "" != s {
		sizes := []int{}
		for _, item := range splitList(s) {
			n, err := strconv.Atoi(item)
			if nil != err {
				return fmt.Errorf("%w: %q", fault.ErrInvalidBenchmarkSize, item)
			}
			sizes = append(sizes, n)
		}
		config.Sizes = sizes
	}
	if s := c.String("orders"); "" != s {
		config.Orders = splitList(s)
	}
	if s := c.String("disciplines"); "" != s {
		config.Disciplines = splitList(s)
	}

	format := strings.ToLower(c.String("format"))
	switch format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidOutputFormat, format)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sizes: %v  orders: %v  disciplines: %v\n", config.Sizes, config.Orders, config.Disciplines)
	}

	results, err := m.runner.Run(config)
	if nil != err {
		return err
	}

	if "table" == format {
		printTable(m.w, results)
	} else if err := printFormatted(m.w, format, results); nil != err {
		return err
	}

	if c.Bool("metrics") {
		return m.runner.WriteMetrics(m.w)
	}
	return nil
}

func printTable(handle io.Writer, results []bench.Result) {
	tw := tabwriter.NewWriter(handle, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "discipline\torder\tsize\tinsert\tsearch\tdelete\theight\tleaves\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%d\t%d\t\n",
			r.Discipline, r.Order, r.Size,
			r.Insert, r.Search, r.Delete,
			r.Height, r.Leaves)
	}
	tw.Flush()
}

// split a comma separated list dropping empty items
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" != item {
			items = append(items, item)
		}
	}
	return items
}
