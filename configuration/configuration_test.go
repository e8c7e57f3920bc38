// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/baltree/configuration"
	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.discipline = "Red-Black"
M.colour = false

M.logging = {
    directory = "logs",
    file = "tree.log",
    size = 4096,
    count = 3,
    levels = {
        shell = "debug",
    },
}

M.benchmark = {
    sizes = { 100, 200 },
    orders = { "random" },
    disciplines = { "rb" },
    search_fraction = 4,
    seed = 99,
    progress = true,
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "baltree.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestFullConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, fullConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	expectedDir, _ := filepath.Abs(dir)
	assert.Equal(t, filepath.Clean(expectedDir), c.DataDirectory)
	assert.Equal(t, "red-black", c.Discipline)
	assert.Equal(t, tree.DisciplineRedBlack, c.TreeDiscipline())
	assert.False(t, c.Colour)

	assert.Equal(t, filepath.Join(c.DataDirectory, "logs"), c.Logging.Directory)
	assert.Equal(t, "tree.log", c.Logging.File)
	assert.Equal(t, 4096, c.Logging.Size)
	assert.Equal(t, 3, c.Logging.Count)
	assert.Equal(t, "debug", c.Logging.Levels["shell"])

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, []int{100, 200}, c.Benchmark.Sizes)
	assert.Equal(t, []string{"random"}, c.Benchmark.Orders)
	assert.Equal(t, []string{"rb"}, c.Benchmark.Disciplines)
	assert.Equal(t, 4, c.Benchmark.SearchFraction)
	assert.Equal(t, int64(99), c.Benchmark.Seed)
	assert.True(t, c.Benchmark.Progress)
}

func TestMinimalConfiguration(t *testing.T) {
	_, fileName := writeConfiguration(t, "return {}\n")

	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "", c.Discipline)
	assert.Equal(t, tree.DisciplineNone, c.TreeDiscipline())
	assert.True(t, c.Colour)
	assert.Equal(t, "baltree.log", c.Logging.File)
	assert.Equal(t, filepath.Join(c.DataDirectory, "log"), c.Logging.Directory)
	assert.Equal(t, []int{10000, 40000, 70000, 100000, 130000}, c.Benchmark.Sizes)
	assert.Equal(t, []string{"avl", "rb"}, c.Benchmark.Disciplines)
	assert.Equal(t, 10, c.Benchmark.SearchFraction)
}

func TestDefault(t *testing.T) {
	dir := t.TempDir()
	c, err := configuration.Default(dir)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, tree.DisciplineNone, c.TreeDiscipline())
	assert.Equal(t, filepath.Join(c.DataDirectory, "log"), c.Logging.Directory)

	// levels are not shared between configurations
	c.Logging.Levels["main"] = "trace"
	other, _ := configuration.Default(dir)
	assert.Equal(t, "info", other.Logging.Levels["main"])
}

func TestNoDiscipline(t *testing.T) {
	_, fileName := writeConfiguration(t, "return { discipline = \" None \" }\n")

	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, "", c.Discipline)
	assert.Equal(t, tree.DisciplineNone, c.TreeDiscipline())
}

func TestInvalidConfiguration(t *testing.T) {
	items := []struct {
		text     string
		expected error
	}{
		{"return { discipline = \"splay\" }\n", fault.ErrInvalidDiscipline},
		{"return { data_directory = \"\" }\n", fault.ErrNotADirectory},
		{"return { logging = { file = \"sub/tree.log\" } }\n", fault.ErrNotPlainFileName},
		{"return { benchmark = { sizes = { 10, 0 } } }\n", fault.ErrInvalidBenchmarkSize},
		{"return { benchmark = { orders = { \"up\" } } }\n", fault.ErrInvalidWorkloadOrder},
	}

	for i, item := range items {
		_, fileName := writeConfiguration(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		assert.True(t, errors.Is(err, item.expected), "%d: error: %v", i, err)
	}
}

func TestMissingDataDirectory(t *testing.T) {
	_, fileName := writeConfiguration(t, "return { data_directory = \"/no/such/directory/here\" }\n")
	_, err := configuration.GetConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "error: %v", err)
}

func TestLuaErrors(t *testing.T) {
	_, fileName := writeConfiguration(t, "this is not lua\n")
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err)

	_, fileName = writeConfiguration(t, "return 42\n")
	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err)

	var notStruct int
	err = configuration.ParseConfigurationFile(fileName, &notStruct)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}

func TestArgumentTable(t *testing.T) {
	_, fileName := writeConfiguration(t, "return { discipline = (arg[0] ~= nil) and \"rb\" or \"avl\" }\n")

	c, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err)
	assert.Equal(t, "rb", c.Discipline)
}
