// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/baltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - the path must already exist and be a directory
func EnsureDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %q", fault.ErrNotADirectory, path)
	}
	return nil
}

// IsPlainFileName - true if name has no directory part
func IsPlainFileName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name && "." != name
	default:
		return false
	}
}
