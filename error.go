// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import "github.com/cockroachdb/errors"

var (
	// ErrUnbalancedScopes is returned when output is requested while one or
	// more scopes have not been closed.
	ErrUnbalancedScopes = errors.New("treetimer: not all timers have stopped")

	// ErrScopeMismatch marks an attempt to close a scope that is not the
	// innermost open scope of the session. The tree is left unchanged.
	ErrScopeMismatch = errors.New("treetimer: scope closed out of order")

	// ErrInvalidRepeatCount is returned for repeat counts below one.
	ErrInvalidRepeatCount = errors.New("treetimer: invalid repeat count")

	// ErrUnknownUnit is returned by ParseUnit.
	ErrUnknownUnit = errors.New("treetimer: unknown unit")
)
