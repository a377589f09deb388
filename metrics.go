// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import "github.com/prometheus/client_golang/prometheus"

// ScopeLabel is the label of the histogram returned by NewDurationHistogram.
const ScopeLabel = "scope"

// NewDurationHistogram returns a histogram vector suitable for
// Options.DurationHistogram. Buckets range from 1µs to about 18 minutes.
func NewDurationHistogram(namespace string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scope_duration_seconds",
		Help:      "Duration of closed measurement scopes.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 16),
	}, []string{ScopeLabel})
}
