// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

// Scope is an open measurement that is closed by calling Close, typically
// deferred right after creation:
//
//	defer s.Measure("compaction").Close()
//
// Deferring Close guarantees the scope ends on every exit path of the
// enclosing function, including early returns and panics.
type Scope struct {
	s      *Session
	h      Handle
	closed bool
}

// Measure opens a scope named name and returns a guard that closes it.
func (s *Session) Measure(name string) *Scope {
	return &Scope{s: s, h: s.Open(name)}
}

// Close closes the scope. Calling Close more than once has no effect after the
// first call. Out of order closes are reported to the session's Logger and
// otherwise ignored; see Session.Close.
func (sc *Scope) Close() {
	if sc.closed {
		return
	}
	sc.closed = true
	_ = sc.s.Close(sc.h)
}

// Handle returns the handle of the underlying scope.
func (sc *Scope) Handle() Handle {
	return sc.h
}
