// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/crlib/crtime"

// NowFn returns the current instant of a monotonic clock. Tests substitute a
// manually advanced clock.
type NowFn func() crtime.Mono

// DefaultNowFn reads the process monotonic clock.
var DefaultNowFn NowFn = crtime.NowMono
