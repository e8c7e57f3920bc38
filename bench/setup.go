// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"io"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
)

// cached workloads
const (
	workloadExpiry  = 10 * time.Minute
	workloadCleanup = 15 * time.Minute
)

// Runner - holds generated workloads and metrics between runs
type Runner struct {
	log       *logger.L
	workloads *cache.Cache
	progress  io.Writer
	metrics   *metrics
}

// New - create a runner logging to log, a nil progress writer turns
// off the progress bar
func New(log *logger.L, progress io.Writer) *Runner {
	return &Runner{
		log:       log,
		workloads: cache.New(workloadExpiry, workloadCleanup),
		progress:  progress,
		metrics:   newMetrics(prometheus.NewRegistry()),
	}
}
