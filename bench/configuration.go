// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"

	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
)

// defaults
const (
	defaultSearchFraction = 10
	defaultSeed           = 1
)

var (
	defaultSizes       = []int{10000, 40000, 70000, 100000, 130000}
	defaultOrders      = []string{"ascending"}
	defaultDisciplines = []string{"avl", "rb"}
)

// Configuration - what to run
type Configuration struct {
	Sizes          []int    `gluamapper:"sizes" json:"sizes"`
	Orders         []string `gluamapper:"orders" json:"orders"`
	Disciplines    []string `gluamapper:"disciplines" json:"disciplines"`
	SearchFraction int      `gluamapper:"search_fraction" json:"search_fraction"`
	Seed           int64    `gluamapper:"seed" json:"seed"`
	Progress       bool     `gluamapper:"progress" json:"progress"`
}

// DefaultConfiguration - five sizes from 10000 to 130000 in ascending
// order for both disciplines
func DefaultConfiguration() Configuration {
	c := Configuration{
		SearchFraction: defaultSearchFraction,
		Seed:           defaultSeed,
	}
	c.SetDefaults()
	return c
}

// SetDefaults - fill in any empty lists
//
// lists are left empty until after a configuration file is read so
// that a shorter list replaces the default rather than overwriting
// its leading items
func (c *Configuration) SetDefaults() {
	if 0 == len(c.Sizes) {
		c.Sizes = append([]int{}, defaultSizes...)
	}
	if 0 == len(c.Orders) {
		c.Orders = append([]string{}, defaultOrders...)
	}
	if 0 == len(c.Disciplines) {
		c.Disciplines = append([]string{}, defaultDisciplines...)
	}
}

// Validate - check every item can be used
func (c *Configuration) Validate() error {
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: %d", fault.ErrInvalidBenchmarkSize, size)
		}
	}
	if c.SearchFraction <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidSearchFraction, c.SearchFraction)
	}
	for _, name := range c.Orders {
		if _, err := ParseOrder(name); nil != err {
			return fmt.Errorf("%w: %q", err, name)
		}
	}
	for _, name := range c.Disciplines {
		if _, err := tree.ParseDiscipline(name); nil != err {
			return fmt.Errorf("%w: %q", err, name)
		}
	}
	return nil
}
