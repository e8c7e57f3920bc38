// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/baltree/fault"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {

	b, err := yaml.Marshal(message)
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s", b)
	return nil
}

// json or yaml, anything else is an error
func printFormatted(handle io.Writer, format string, message interface{}) error {
	switch format {
	case "json":
		return printJson(handle, message)
	case "yaml":
		return printYaml(handle, message)
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidOutputFormat, format)
	}
}
