// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/baltree/bench"
	"github.com/bitmark-inc/baltree/configuration"
	"github.com/bitmark-inc/baltree/tree"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed := m.config.Benchmark.Seed
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}

	names := verifyDisciplines(c.String("discipline"), m.config)

	operations := c.Int("operations")
	results := make([]*bench.Verification, 0, len(names))
	for _, name := range names {
		d, err := tree.ParseDiscipline(name)
		if nil != err {
			return fmt.Errorf("%w: %q", err, name)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "verify: %s  operations: %d  seed: %d\n", d, operations, seed)
		}
		v, err := m.runner.Verify(d, operations, seed)
		if nil != err {
			return err
		}
		results = append(results, v)
	}

	return printFormatted(m.w, strings.ToLower(c.String("format")), results)
}

// the --discipline option, else the configured discipline, else every
// benchmark discipline
func verifyDisciplines(option string, theConfiguration *configuration.Configuration) []string {
	if "" != option {
		return []string{option}
	}
	if "" != theConfiguration.Discipline {
		return []string{theConfiguration.Discipline}
	}
	return theConfiguration.Benchmark.Disciplines
}
