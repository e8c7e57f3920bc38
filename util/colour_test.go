// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/baltree/util"
)

func TestPaint(t *testing.T) {
	c := util.NewColouriser(true)
	assert.True(t, c.Enabled())
	assert.Equal(t, "\x1b[31m12\x1b[0m", c.Paint(util.CoRed, "12"))
	assert.Equal(t, "12", c.Paint("", "12"), "no colour")

	plain := util.NewColouriser(false)
	assert.False(t, plain.Enabled())
	assert.Equal(t, "12", plain.Paint(util.CoRed, "12"))
}

func TestColouredLogging(t *testing.T) {
	dir := t.TempDir()
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	log := logger.New("colour")
	util.LogDebug(log, util.CoCyan, "command: insert")
	util.LogInfo(log, util.CoGreen, "created avl tree")
	util.LogWarn(log, util.CoYellow, "check failed")
	logger.Finalise()

	b, err := os.ReadFile(filepath.Join(dir, "testing.log"))
	if nil != err {
		t.Fatalf("read log error: %s", err)
	}
	text := string(b)
	assert.True(t, strings.Contains(text, "\x1b[36mcommand: insert\x1b[0m"), "log: %q", text)
	assert.True(t, strings.Contains(text, "\x1b[32mcreated avl tree\x1b[0m"), "log: %q", text)
	assert.True(t, strings.Contains(text, "\x1b[33mcheck failed\x1b[0m"), "log: %q", text)
}
