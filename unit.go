// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Unit is the time unit durations are expressed in when rendering.
type Unit uint8

// The supported units. Milliseconds is the default.
const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	numUnits
)

// DefaultUnit is used when no unit option is given.
const DefaultUnit = Milliseconds

var unitInfo = [numUnits]struct {
	suffix string
	size   time.Duration
}{
	Nanoseconds:  {"ns", time.Nanosecond},
	Microseconds: {"us", time.Microsecond},
	Milliseconds: {"ms", time.Millisecond},
	Seconds:      {"s", time.Second},
	Minutes:      {"min", time.Minute},
	Hours:        {"h", time.Hour},
}

// String returns the unit suffix used in rendered output.
func (u Unit) String() string {
	if u >= numUnits {
		return fmt.Sprintf("Unit(%d)", u)
	}
	return unitInfo[u].suffix
}

// SafeValue implements redact.SafeValue.
func (u Unit) SafeValue() {}

var _ redact.SafeValue = Unit(0)

func (u Unit) valid() bool {
	return u < numUnits
}

// Duration returns the length of one unit. It panics if u is not one of the
// exported constants.
func (u Unit) Duration() time.Duration {
	if u >= numUnits {
		panic(errors.AssertionFailedf("invalid unit %d", u))
	}
	return unitInfo[u].size
}

// Count returns d as a whole number of units, truncating toward zero.
func (u Unit) Count(d time.Duration) int64 {
	return int64(d / u.Duration())
}

// Float returns d in (fractional) units.
func (u Unit) Float(d time.Duration) float64 {
	return float64(d) / float64(u.Duration())
}

// Format returns the truncated count of d followed by the unit suffix, e.g.
// "12ms".
func (u Unit) Format(d time.Duration) string {
	return strconv.FormatInt(u.Count(d), 10) + u.String()
}

// ParseUnit parses a unit suffix. "m" is accepted as an alias of "min".
func ParseUnit(s string) (Unit, error) {
	if s == "m" {
		return Minutes, nil
	}
	for u := Unit(0); u < numUnits; u++ {
		if unitInfo[u].suffix == s {
			return u, nil
		}
	}
	return 0, errors.Mark(errors.Newf("treetimer: unknown unit %q", s), ErrUnknownUnit)
}
