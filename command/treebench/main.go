// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/baltree/bench"
	"github.com/bitmark-inc/baltree/configuration"
	"github.com/bitmark-inc/baltree/fault"
)

type metadata struct {
	config  *configuration.Configuration
	runner  *bench.Runner
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "treebench"
	app.Usage = "time and verify the balanced tree disciplines"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " read settings from lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "insert, search and delete workloads and report timings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sizes, s",
					Value: "",
					Usage: " comma separated workload sizes `N,N…`",
				},
				cli.StringFlag{
					Name:  "orders, o",
					Value: "",
					Usage: " comma separated key orders `ORDER,…` [ascending|descending|random]",
				},
				cli.StringFlag{
					Name:  "disciplines, d",
					Value: "",
					Usage: " comma separated disciplines `NAME,…` [avl|rb]",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "table",
					Usage: " output `FORMAT` [table|json|yaml]",
				},
				cli.BoolFlag{
					Name:  "metrics, m",
					Usage: " also print the prometheus metrics",
				},
			},
			Action: runBenchmark,
		},
		{
			Name:      "verify",
			Usage:     "random inserts and deletes with a full check after each",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "operations, n",
					Value: 10000,
					Usage: " number of operations `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [default from configuration]",
				},
				cli.StringFlag{
					Name:  "discipline, d",
					Value: "",
					Usage: " only this discipline `NAME` [avl|rb]",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "json",
					Usage: " output `FORMAT` [json|yaml]",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "workload",
			Usage:     "print the keys of a workload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "ascending",
					Usage: " key `ORDER` [ascending|descending|random]",
				},
				cli.IntFlag{
					Name:  "size, n",
					Value: 0,
					Usage: "*number of keys `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [default from configuration]",
				},
			},
			Action: runWorkload,
		},
		{
			Name:  "version",
			Usage: "display treebench version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config")
		var theConfiguration *configuration.Configuration
		var err error
		if "" == file {
			theConfiguration, err = configuration.Default(".")
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			theConfiguration, err = configuration.GetConfiguration(file)
		}
		if nil != err {
			return err
		}

		if verbose {
			theConfiguration.Logging.Levels["bench"] = "debug"
		}

		if err := logger.Initialise(theConfiguration.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("theConfiguration: %v", theConfiguration)

		var progress io.Writer
		if theConfiguration.Benchmark.Progress {
			progress = e
		}

		c.App.Metadata["config"] = &metadata{
			config:  theConfiguration,
			runner:  bench.New(logger.New("bench"), progress),
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
