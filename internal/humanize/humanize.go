// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package humanize formats numbers for timing reports.
package humanize

import (
	"math"
	"strconv"

	"github.com/cockroachdb/crlib/crhumanize"
	"golang.org/x/exp/constraints"
)

// Percent formats a percentage with two decimals, e.g. "33.33%". NaN and
// infinities are shown as "0.00%"; callers never divide by zero, so these only
// appear on overflow.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// Count formats an occurrence count compactly (e.g. "1.5K").
func Count[N constraints.Integer](n N) string {
	return string(crhumanize.Count(int64(n), crhumanize.Compact))
}
