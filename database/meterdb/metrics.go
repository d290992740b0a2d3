// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hookgate/hookgate/utils/wrappers"
)

// nanosecondsBuckets is a set of latency buckets ranging from 1us to ~1s.
var nanosecondsBuckets = prometheus.ExponentialBuckets(1_000, 4, 11)

func newMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("Latency of a %s call in nanoseconds", name),
		Buckets:   nanosecondsBuckets,
	})
}

type metrics struct {
	has,
	get,
	put,
	delete,
	newBatch,
	newIterator,
	compact,
	close,
	healthCheck,
	bWrite,
	iNext prometheus.Histogram
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.has = newMetric(namespace, "has")
	m.get = newMetric(namespace, "get")
	m.put = newMetric(namespace, "put")
	m.delete = newMetric(namespace, "delete")
	m.newBatch = newMetric(namespace, "new_batch")
	m.newIterator = newMetric(namespace, "new_iterator")
	m.compact = newMetric(namespace, "compact")
	m.close = newMetric(namespace, "close")
	m.healthCheck = newMetric(namespace, "health_check")
	m.bWrite = newMetric(namespace, "batch_write")
	m.iNext = newMetric(namespace, "iterator_next")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.has),
		registerer.Register(m.get),
		registerer.Register(m.put),
		registerer.Register(m.delete),
		registerer.Register(m.newBatch),
		registerer.Register(m.newIterator),
		registerer.Register(m.compact),
		registerer.Register(m.close),
		registerer.Register(m.healthCheck),
		registerer.Register(m.bWrite),
		registerer.Register(m.iNext),
	)
	return errs.Err
}
