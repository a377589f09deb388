// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treetimer/internal/ascii"
	"github.com/cockroachdb/treetimer/internal/humanize"
)

// RenderOption is an optional argument to Render and the other reporting
// methods. Options are independent and may be given in any order.
type RenderOption func(*renderOptions)

type renderOptions struct {
	sort       bool
	percentage bool
	align      bool
	normalize  bool
	unit       Unit
}

func makeRenderOptions(opts []RenderOption) (renderOptions, error) {
	o := renderOptions{unit: DefaultUnit}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.unit.valid() {
		return renderOptions{}, errors.Mark(
			errors.Newf("treetimer: unknown unit %d", errors.Safe(uint8(o.unit))), ErrUnknownUnit)
	}
	return o, nil
}

// Sort orders the children of every scope by decreasing duration. Scopes with
// equal durations keep the order in which they were opened. The stored tree
// is not reordered.
func Sort() RenderOption {
	return func(o *renderOptions) { o.sort = true }
}

// Percentage appends to every scope its share of the parent's duration. The
// share of a top-level scope is relative to the sum of all top-level scopes. A
// zero parent duration yields 0%.
func Percentage() RenderOption {
	return func(o *renderOptions) { o.percentage = true }
}

// Align pads labels, durations and percentages into columns.
func Align() RenderOption {
	return func(o *renderOptions) { o.align = true }
}

// NormalizeRepeats divides the duration of every scope tagged with
// DeclareRepeatCount by its repeat count and marks its label with the count.
func NormalizeRepeats() RenderOption {
	return func(o *renderOptions) { o.normalize = true }
}

// WithUnit selects the unit all durations are expressed in. The default is
// Milliseconds. Only the exported Unit constants are valid; rendering with any
// other value returns an error marked with ErrUnknownUnit.
func WithUnit(u Unit) RenderOption {
	return func(o *renderOptions) { o.unit = u }
}

// row is the presentation state of one rendered scope.
type row struct {
	id      nodeID
	depth   int
	label   string
	time    string
	percent float64
}

// rows lists the scopes in rendering order: pre-order, root excluded, with
// siblings sorted if requested.
func (s *Session) rows(o renderOptions) []row {
	rows := make([]row, 0, s.Len())
	var visit func(parent nodeID)
	visit = func(parent nodeID) {
		children := s.nodes[parent].children
		if o.sort {
			children = s.sortedChildren(parent)
		}
		denom := s.denominator(parent)
		for _, id := range children {
			rows = append(rows, s.makeRow(id, denom, o))
			visit(id)
		}
	}
	visit(rootID)
	return rows
}

func (s *Session) makeRow(id nodeID, denom time.Duration, o renderOptions) row {
	n := &s.nodes[id]
	d, label := n.duration, n.name
	if o.normalize && n.repeat > 0 {
		d /= time.Duration(n.repeat)
		label += " (×" + strconv.Itoa(n.repeat) + ")"
	}
	return row{
		id:      id,
		depth:   n.depth,
		label:   label,
		time:    o.unit.Format(d),
		percent: percentOf(n.duration, denom),
	}
}

// sortedChildren returns the children of id ordered by decreasing duration,
// ties in insertion order.
func (s *Session) sortedChildren(id nodeID) []nodeID {
	children := slices.Clone(s.nodes[id].children)
	slices.SortStableFunc(children, func(a, b nodeID) int {
		return cmp.Compare(s.nodes[b].duration, s.nodes[a].duration)
	})
	return children
}

// denominator is the duration the percentages of id's children are relative
// to. The root is never measured; its total is the sum of its children.
func (s *Session) denominator(id nodeID) time.Duration {
	if id == rootID {
		return s.rootTotal()
	}
	return s.nodes[id].duration
}

func (s *Session) rootTotal() time.Duration {
	var total time.Duration
	for _, c := range s.nodes[rootID].children {
		total += s.nodes[c].duration
	}
	return total
}

func percentOf(d, denom time.Duration) float64 {
	if denom <= 0 {
		return 0
	}
	return 100 * float64(d) / float64(denom)
}

// columns holds the column widths used when aligning. All widths are zero
// without Align.
type columns struct {
	label   ascii.Column
	time    ascii.Column
	percent ascii.Column
}

func (o *renderOptions) measure(rows []row) columns {
	var c columns
	if !o.align {
		return c
	}
	for i := range rows {
		r := &rows[i]
		c.label.Fit(labelText(r))
		c.time.Fit(r.time)
		if o.percentage {
			c.percent.Fit(humanize.Percent(r.percent))
		}
	}
	return c
}

// labelText is the indented label of r, including its colon.
func labelText(r *row) string {
	return strings.Repeat("| ", r.depth-1) + r.label + ":"
}

// writeRow formats one line, without a trailing newline.
func (o *renderOptions) writeRow(b *strings.Builder, r *row, c columns) {
	ascii.WritePadded(b, labelText(r), c.label.Width(), ascii.AlignLeft)
	b.WriteByte(' ')
	ascii.WritePadded(b, r.time, c.time.Width(), ascii.AlignRight)
	if o.percentage {
		b.WriteByte(' ')
		ascii.WritePadded(b, humanize.Percent(r.percent), c.percent.Width(), ascii.AlignRight)
	}
}

// Lines returns the rendering of the tree, one line per scope, without
// trailing newlines. The returned sequence can be iterated more than once. It
// returns an error wrapping ErrUnbalancedScopes if a scope is still open.
func (s *Session) Lines(opts ...RenderOption) (iter.Seq[string], error) {
	if err := s.checkBalanced(); err != nil {
		return nil, err
	}
	o, err := makeRenderOptions(opts)
	if err != nil {
		return nil, err
	}
	rows := s.rows(o)
	cols := o.measure(rows)
	return func(yield func(string) bool) {
		var b strings.Builder
		for i := range rows {
			b.Reset()
			o.writeRow(&b, &rows[i], cols)
			if !yield(b.String()) {
				return
			}
		}
	}, nil
}

// Render renders the tree as text: one line per scope in pre-order, each
// indented with "| " per nesting level and terminated by a newline. It returns
// an error wrapping ErrUnbalancedScopes if a scope is still open.
func (s *Session) Render(opts ...RenderOption) (string, error) {
	lines, err := s.Lines(opts...)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// String implements fmt.Stringer. It renders with default options, or
// describes the error if the tree cannot be rendered.
func (s *Session) String() string {
	out, err := s.Render()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}
