// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/baltree/bench"
	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
	"github.com/bitmark-inc/baltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultDiscipline    = "" // show the main menu

	defaultLogDirectory = "log"
	defaultLogFile      = "baltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - everything the programs can be told from a file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Discipline    string               `gluamapper:"discipline" json:"discipline"`
	Colour        bool                 `gluamapper:"colour" json:"colour"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
	Benchmark     bench.Configuration  `gluamapper:"benchmark" json:"benchmark"`
}

// a fresh level map each time, the mapper merges file levels into it
func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		"shell":           "info",
		"bench":           "info",
		logger.DefaultTag: "critical",
	}
}

func defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Discipline:    defaultDiscipline,
		Colour:        true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},

		// lists are filled in after parsing
		Benchmark: bench.Configuration{
			SearchFraction: bench.DefaultConfiguration().SearchFraction,
			Seed:           bench.DefaultConfiguration().Seed,
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	return finish(options, dataDirectory)
}

// Default - the configuration used when no file is given, relative
// paths are under dataDirectory
func Default(dataDirectory string) (*Configuration, error) {
	dataDirectory, err := filepath.Abs(filepath.Clean(dataDirectory))
	if nil != err {
		return nil, err
	}
	return finish(defaults(), dataDirectory)
}

// TreeDiscipline - the configured discipline, DisciplineNone if the
// setting is empty
func (c *Configuration) TreeDiscipline() tree.Discipline {
	if "" == c.Discipline {
		return tree.DisciplineNone
	}
	d, _ := tree.ParseDiscipline(c.Discipline) // validated by finish
	return d
}

// internal: validate and expand paths
func finish(options *Configuration, dataDirectory string) (*Configuration, error) {

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	case ".":
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	options.Discipline = strings.ToLower(strings.TrimSpace(options.Discipline))
	switch options.Discipline {
	case "", "none":
		options.Discipline = ""
	default:
		if _, err := tree.ParseDiscipline(options.Discipline); nil != err {
			return nil, fmt.Errorf("%w: %q", err, options.Discipline)
		}
	}

	options.Benchmark.SetDefaults()
	if err := options.Benchmark.Validate(); nil != err {
		return nil, err
	}

	// log file must be a simple name in the log directory
	if !util.IsPlainFileName(options.Logging.File) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotPlainFileName, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
