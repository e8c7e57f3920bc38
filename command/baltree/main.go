// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/baltree/configuration"
	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/shell"
	"github.com/bitmark-inc/baltree/tree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "discipline", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "no-colour", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--discipline=avl|rb] [--no-colour]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read the configuration file or use defaults in the current directory
	var theConfiguration *configuration.Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = configuration.GetConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		theConfiguration, err = configuration.Default(".")
		if nil != err {
			exitwithstatus.Message("%s: default configuration error: %s", program, err)
		}
	}

	// command line overrides
	initial, err := initialDiscipline(options["discipline"], theConfiguration)
	if nil != err {
		exitwithstatus.Message("%s: discipline error: %s", program, err)
	}
	colour := theConfiguration.Colour && 0 == len(options["no-colour"])
	if len(options["verbose"]) > 0 {
		for _, channel := range []string{"main", "shell"} {
			theConfiguration.Logging.Levels[channel] = "debug"
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if tree.DisciplineNone != initial {
		log.Infof("initial discipline: %s", initial)
	}

	s := shell.New(logger.New("shell"), os.Stdin, os.Stdout, colour, shell.NewTree)
	if err = s.Run(initial); nil != err {
		fault.Criticalf("shell error: %s", err)
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", program, err)
		exitwithstatus.Exit(1)
	}
}

// the tree opened before the main menu: the last -d option, otherwise
// the configured discipline, DisciplineNone shows the main menu
func initialDiscipline(flags []string, theConfiguration *configuration.Configuration) (tree.Discipline, error) {
	if n := len(flags); n > 0 {
		d, err := tree.ParseDiscipline(flags[n-1])
		if nil != err {
			return tree.DisciplineNone, fmt.Errorf("%w: %q", err, flags[n-1])
		}
		return d, nil
	}
	return theConfiguration.TreeDiscipline(), nil
}
