// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import (
	"time"

	"github.com/cockroachdb/errors"
)

// find returns the first scope named name in pre-order. Because nodes are
// appended as their scopes open, pre-order is plain index order.
func (s *Session) find(name string) (nodeID, bool) {
	for i := 1; i < len(s.nodes); i++ {
		if s.nodes[i].name == name {
			return nodeID(i), true
		}
	}
	return 0, false
}

// LookupDuration returns the duration of the first scope named name, in the
// order scopes were opened. It returns 0 if there is no such scope or if the
// scope is still open.
func (s *Session) LookupDuration(name string) time.Duration {
	if id, ok := s.find(name); ok {
		return s.nodes[id].duration
	}
	return 0
}

// DeclareRepeatCount declares that the first scope named name (in the order
// scopes were opened) measured count repetitions of the same work. When
// rendering with NormalizeRepeats, its duration is divided by count and its
// label gets a " (×count)" suffix. The stored duration is not modified.
//
// It is not an error if no scope is named name.
func (s *Session) DeclareRepeatCount(name string, count int) error {
	if count < 1 {
		return errors.Mark(
			errors.Newf("treetimer: repeat count %d for %q must be positive", count, name),
			ErrInvalidRepeatCount)
	}
	id, ok := s.find(name)
	if !ok {
		s.opts.Logger.Infof("treetimer: no scope named %q; repeat count ignored", name)
		return nil
	}
	s.nodes[id].repeat = count
	return nil
}
