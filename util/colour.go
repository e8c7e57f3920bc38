// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/logger"
)

// ANSI colour codes
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"
	CoDim    = "\x1b[2m"

	CoBlack  = "\x1b[30m"
	CoRed    = "\x1b[31m"
	CoGreen  = "\x1b[32m"
	CoYellow = "\x1b[33m"
	CoBlue   = "\x1b[34m"
	CoCyan   = "\x1b[36m"
	CoWhite  = "\x1b[37m"

	CoLightGray = "\x1b[90m"
	CoLightRed  = "\x1b[91m"
)

// Colouriser - wraps text in colour codes when enabled
type Colouriser struct {
	enabled bool
}

// NewColouriser - plain text when enabled is false
func NewColouriser(enabled bool) Colouriser {
	return Colouriser{
		enabled: enabled,
	}
}

// Enabled - true if codes are added
func (c Colouriser) Enabled() bool {
	return c.enabled
}

// Paint - surround s with a colour and a reset
func (c Colouriser) Paint(colour string, s string) string {
	if !c.enabled || "" == colour {
		return s
	}
	return colour + s + CoReset
}

// LogDebug - print message in Debug level with assigned colour
func LogDebug(log *logger.L, colour string, message string) {
	log.Debugf("%s%s%s", colour, message, CoReset)
}

// LogInfo - print message in Info level with assigned colour
func LogInfo(log *logger.L, colour string, message string) {
	log.Infof("%s%s%s", colour, message, CoReset)
}

// LogWarn - print message in Warn level with assigned colour
func LogWarn(log *logger.L, colour string, message string) {
	log.Warnf("%s%s%s", colour, message, CoReset)
}
