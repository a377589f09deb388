// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treetimer

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/swiss"
	"github.com/cockroachdb/treetimer/internal/humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

// NameStats aggregates all scopes that share a name, e.g. the iterations of a
// loop body.
type NameStats struct {
	Name  string
	Count int64
	Total time.Duration
	Mean  time.Duration
	Min   time.Duration
	Max   time.Duration
	// P50 and P99 are estimated with three significant digits.
	P50 time.Duration
	P99 time.Duration
}

// Durations above this are clamped when estimating percentiles.
const maxRecordableDuration = time.Hour

// Aggregate groups scopes by name. Groups are returned in the order their
// first scope was opened. It returns an error wrapping ErrUnbalancedScopes if
// a scope is still open.
func (s *Session) Aggregate() ([]NameStats, error) {
	if err := s.checkBalanced(); err != nil {
		return nil, err
	}
	var index swiss.Map[string, int]
	index.Init(16)
	var stats []NameStats
	// groups[j] lists the scopes named stats[j].Name.
	var groups [][]nodeID
	for i := 1; i < len(s.nodes); i++ {
		n := &s.nodes[i]
		j, ok := index.Get(n.name)
		if !ok {
			j = len(stats)
			index.Put(n.name, j)
			stats = append(stats, NameStats{Name: n.name, Min: n.duration, Max: n.duration})
			groups = append(groups, nil)
		}
		groups[j] = append(groups[j], nodeID(i))
		st := &stats[j]
		st.Count++
		st.Total += n.duration
		st.Min = min(st.Min, n.duration)
		st.Max = max(st.Max, n.duration)
	}
	// A histogram over this range holds tens of thousands of counters; one is
	// reused for all names.
	hist := hdrhistogram.New(1, int64(maxRecordableDuration), 3)
	for j := range stats {
		st := &stats[j]
		st.Mean = st.Total / time.Duration(st.Count)
		hist.Reset()
		for _, id := range groups[j] {
			// The value is clamped to the trackable range, so this cannot fail.
			_ = hist.RecordValue(int64(min(max(s.nodes[id].duration, 0), maxRecordableDuration)))
		}
		st.P50 = time.Duration(hist.ValueAtQuantile(50))
		st.P99 = time.Duration(hist.ValueAtQuantile(99))
	}
	return stats, nil
}

// Summary renders Aggregate as a table, with durations in the selected unit.
// With Sort, rows are ordered by decreasing total duration. Other render
// options are ignored.
func (s *Session) Summary(opts ...RenderOption) (string, error) {
	stats, err := s.Aggregate()
	if err != nil {
		return "", err
	}
	o, err := makeRenderOptions(opts)
	if err != nil {
		return "", err
	}
	if o.sort {
		slices.SortStableFunc(stats, func(a, b NameStats) int {
			return cmp.Compare(b.Total, a.Total)
		})
	}
	var buf bytes.Buffer
	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{"Name", "Count", "Total", "Mean", "P50", "P99", "Max"})
	for _, st := range stats {
		tbl.Append([]string{
			st.Name,
			humanize.Count(st.Count),
			o.unit.Format(st.Total),
			o.unit.Format(st.Mean),
			o.unit.Format(st.P50),
			o.unit.Format(st.P99),
			o.unit.Format(st.Max),
		})
	}
	tbl.Render()
	return buf.String(), nil
}

// Plot returns an ASCII graph of the durations of all scopes named name, in
// the order they were opened, expressed in the selected unit. The graph is
// height rows tall. It returns "" if no scope is named name.
func (s *Session) Plot(name string, height int, opts ...RenderOption) (string, error) {
	if err := s.checkBalanced(); err != nil {
		return "", err
	}
	o, err := makeRenderOptions(opts)
	if err != nil {
		return "", err
	}
	var values []float64
	for i := 1; i < len(s.nodes); i++ {
		if s.nodes[i].name == name {
			values = append(values, o.unit.Float(s.nodes[i].duration))
		}
	}
	if len(values) == 0 {
		return "", nil
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s (%s)", name, o.unit)),
	), nil
}
