// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii lays out plain text in fixed-width columns.
package ascii

import (
	"strings"
	"unicode/utf8"
)

// Align is the alignment of a value within its column.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Width returns the number of columns s occupies. Every rune occupies one
// column.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Column accumulates the width of the widest value in a column.
type Column struct {
	width int
}

// Fit widens the column to hold s.
func (c *Column) Fit(s string) {
	c.width = max(c.width, Width(s))
}

// Width returns the column width.
func (c Column) Width() int {
	return c.width
}

// WritePadded writes s to b, padded with spaces to width columns. Values wider
// than the column are written unpadded.
func WritePadded(b *strings.Builder, s string, width int, align Align) {
	padding := max(width-Width(s), 0)
	if align == AlignRight {
		writeSpaces(b, padding)
	}
	b.WriteString(s)
	if align == AlignLeft {
		writeSpaces(b, padding)
	}
}

func writeSpaces(b *strings.Builder, n int) {
	for range n {
		b.WriteByte(' ')
	}
}
