// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import (
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/treetimer/internal/base"
	"github.com/prometheus/client_golang/prometheus"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// NoopLogger discards all log messages.
type NoopLogger = base.NoopLogger

// Options holds the optional parameters for configuring a Session. The zero
// value is usable.
type Options struct {
	// Logger receives diagnostics, most notably scopes closed out of order.
	// Defaults to DefaultLogger.
	Logger Logger

	// NowFn returns the current monotonic instant. It is read once when a
	// scope opens and once when it closes. Defaults to crtime.NowMono.
	NowFn func() crtime.Mono

	// DurationHistogram, if set, observes the duration (in seconds) of every
	// successfully closed scope. It must have exactly one label, which is set
	// to the scope name. See NewDurationHistogram.
	DurationHistogram *prometheus.HistogramVec
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() {
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	if o.NowFn == nil {
		o.NowFn = base.DefaultNowFn
	}
}
