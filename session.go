// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treetimer measures nested, named time intervals and renders them as
// an indented tree.
//
// A Session owns one measurement tree. Scopes are opened and closed in LIFO
// order; every scope becomes a child of the innermost open scope:
//
//	s := treetimer.NewSession(nil)
//	func() {
//		defer s.Measure("load").Close()
//		...
//	}()
//	out, err := s.Render(treetimer.Sort(), treetimer.Align())
//
// A Session is not safe for concurrent use.
package treetimer

import (
	"sync/atomic"
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/treetimer/internal/invariants"
)

// nodeID indexes Session.nodes. Nodes are appended when their scope opens, so
// index order is the insertion pre-order of the tree.
type nodeID int32

const (
	rootID   nodeID = 0
	noParent nodeID = -1
)

type node struct {
	name     string
	start    crtime.Mono
	duration time.Duration
	// depth is 0 for the root and parent.depth+1 otherwise.
	depth    int
	parent   nodeID
	children []nodeID
	closed   bool
	// repeat is the declared repeat count; 0 if none was declared.
	repeat int
}

// Handle identifies a scope opened with Session.Open. The zero Handle is
// never valid.
type Handle struct {
	id nodeID
	// epoch identifies the tree the scope was opened in. Epochs are unique
	// across all sessions and Reset draws a new one, so handles from another
	// session or from a discarded tree are rejected.
	epoch uint64
}

// SafeFormat implements redact.SafeFormatter.
func (h Handle) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("scope#%d/%d", int32(h.id), h.epoch)
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return redact.StringWithoutMarkers(h)
}

// Session is a measurement tree together with its cursor, the innermost open
// scope.
type Session struct {
	opts   Options
	nodes  []node
	cursor nodeID
	// open is the number of scopes opened but not yet closed.
	open  int
	epoch uint64
}

// epochs is the source of tree epochs. It is never zero after an Add, so the
// zero Handle is never valid.
var epochs atomic.Uint64

// NewSession returns an empty Session. opts may be nil.
func NewSession(opts *Options) *Session {
	s := &Session{}
	if opts != nil {
		s.opts = *opts
	}
	s.opts.EnsureDefaults()
	s.Reset()
	return s
}

// Reset discards all measurements, including open scopes. Handles obtained
// before the reset are invalidated.
func (s *Session) Reset() {
	s.nodes = append(s.nodes[:0], node{parent: noParent})
	s.cursor = rootID
	s.open = 0
	s.epoch = epochs.Add(1)
}

// Open starts a new scope as the last child of the innermost open scope and
// makes it the innermost open scope. It always succeeds.
func (s *Session) Open(name string) Handle {
	id := nodeID(len(s.nodes))
	parent := s.cursor
	s.nodes = append(s.nodes, node{
		name:   name,
		depth:  s.nodes[parent].depth + 1,
		parent: parent,
	})
	s.nodes[parent].children = append(s.nodes[parent].children, id)
	s.cursor = id
	s.open++
	// Read the clock last so bookkeeping is not attributed to the scope.
	s.nodes[id].start = s.opts.NowFn()
	return Handle{id: id, epoch: s.epoch}
}

// Close ends the scope identified by h, which must be the innermost open
// scope. On success the duration of the scope is recorded and its parent
// becomes the innermost open scope.
//
// Closing any other scope (an already closed one, an outer one, one opened
// in another Session or before a Reset, or the zero Handle) returns an error
// marked with ErrScopeMismatch and leaves the session unchanged.
func (s *Session) Close(h Handle) error {
	now := s.opts.NowFn()
	if err := s.checkClose(h); err != nil {
		s.opts.Logger.Errorf("%v", err)
		return err
	}
	n := &s.nodes[h.id]
	n.duration = now.Sub(n.start)
	n.closed = true
	s.cursor = n.parent
	s.open--
	if s.opts.DurationHistogram != nil {
		s.opts.DurationHistogram.WithLabelValues(n.name).Observe(n.duration.Seconds())
	}
	if invariants.Enabled {
		s.checkInvariants()
	}
	return nil
}

// Stop closes the innermost open scope. It returns an error marked with
// ErrScopeMismatch if no scope is open.
func (s *Session) Stop() error {
	if s.cursor == rootID {
		err := errors.Mark(errors.New("treetimer: no open scope to stop"), ErrScopeMismatch)
		s.opts.Logger.Errorf("%v", err)
		return err
	}
	return s.Close(Handle{id: s.cursor, epoch: s.epoch})
}

func (s *Session) checkClose(h Handle) error {
	switch {
	case h.epoch != s.epoch:
		return errors.Mark(
			errors.Newf("treetimer: %s does not belong to this tree", h), ErrScopeMismatch)
	case h.id <= rootID || int(h.id) >= len(s.nodes):
		return errors.Mark(
			errors.Newf("treetimer: %s does not refer to a scope", h), ErrScopeMismatch)
	case s.nodes[h.id].closed:
		return errors.Mark(
			errors.Newf("treetimer: %s (%q) is already closed", h, s.nodes[h.id].name),
			ErrScopeMismatch)
	case h.id != s.cursor:
		cur := Handle{id: s.cursor, epoch: s.epoch}
		return errors.Mark(
			errors.Newf("treetimer: closing %s (%q) while %s (%q) is the innermost open scope",
				h, s.nodes[h.id].name, cur, s.nodes[s.cursor].name),
			ErrScopeMismatch)
	}
	return nil
}

// checkInvariants verifies the chain of open scopes from the cursor to the
// root.
func (s *Session) checkInvariants() {
	open := 0
	for id := s.cursor; id != rootID; id = s.nodes[id].parent {
		n := &s.nodes[id]
		if n.closed {
			panic(errors.AssertionFailedf("treetimer: closed scope %d on the open chain", int32(id)))
		}
		if n.depth != s.nodes[n.parent].depth+1 {
			panic(errors.AssertionFailedf("treetimer: scope %d has depth %d, parent has depth %d",
				int32(id), n.depth, s.nodes[n.parent].depth))
		}
		open++
	}
	if open != s.open {
		panic(errors.AssertionFailedf("treetimer: %d scopes on the open chain, expected %d", open, s.open))
	}
}

// Len returns the number of scopes opened since the last Reset.
func (s *Session) Len() int {
	return len(s.nodes) - 1
}

// OpenScopes returns the number of scopes that have been opened but not
// closed.
func (s *Session) OpenScopes() int {
	return s.open
}

// checkBalanced returns an error wrapping ErrUnbalancedScopes if any scope is
// still open.
func (s *Session) checkBalanced() error {
	if s.open > 0 {
		return errors.Wrapf(ErrUnbalancedScopes, "%d open scope(s)", s.open)
	}
	return nil
}
