// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	metricsNamespace = "baltree"
	metricsSubsystem = "bench"
)

var metricLabels = []string{"discipline", "order", "size"}

type metrics struct {
	registry      *prometheus.Registry
	insertSeconds *prometheus.GaugeVec
	searchSeconds *prometheus.GaugeVec
	deleteSeconds *prometheus.GaugeVec
	height        *prometheus.GaugeVec
	leaves        *prometheus.GaugeVec
}

func newGauge(name string, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      name,
			Help:      help,
		},
		metricLabels,
	)
}

func newMetrics(registry *prometheus.Registry) *metrics {
	m := &metrics{
		registry:      registry,
		insertSeconds: newGauge("insert_seconds", "time to insert every key of the workload"),
		searchSeconds: newGauge("search_seconds", "time to search the leading fraction of the workload"),
		deleteSeconds: newGauge("delete_seconds", "time to delete every key of the workload"),
		height:        newGauge("height", "tree height after all inserts"),
		leaves:        newGauge("leaves", "leaf count after all inserts"),
	}
	registry.MustRegister(
		m.insertSeconds,
		m.searchSeconds,
		m.deleteSeconds,
		m.height,
		m.leaves,
	)
	return m
}

// internal: keep the latest figures for one run
func (m *metrics) record(result Result) {
	labels := []string{result.Discipline, result.Order, strconv.Itoa(result.Size)}
	m.insertSeconds.WithLabelValues(labels...).Set(result.Insert.Seconds())
	m.searchSeconds.WithLabelValues(labels...).Set(result.Search.Seconds())
	m.deleteSeconds.WithLabelValues(labels...).Set(result.Delete.Seconds())
	m.height.WithLabelValues(labels...).Set(float64(result.Height))
	m.leaves.WithLabelValues(labels...).Set(float64(result.Leaves))
}

// WriteMetrics - all recorded results in the prometheus text format
func (r *Runner) WriteMetrics(w io.Writer) error {
	families, err := r.metrics.registry.Gather()
	if nil != err {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); nil != err {
			return err
		}
	}
	return nil
}
