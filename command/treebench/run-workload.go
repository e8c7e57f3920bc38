// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/baltree/bench"
)

func runWorkload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order, err := bench.ParseOrder(c.String("order"))
	if nil != err {
		return err
	}

	seed := m.config.Benchmark.Seed
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}

	keys, err := m.runner.Workload(order, c.Int("size"), seed)
	if nil != err {
		return err
	}

	for _, k := range keys {
		fmt.Fprintf(m.w, "%d\n", k)
	}
	return nil
}
