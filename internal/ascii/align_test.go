// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePadded(t *testing.T) {
	testCases := []struct {
		s     string
		width int
		align Align
		want  string
	}{
		{"ab", 5, AlignLeft, "ab   "},
		{"ab", 5, AlignRight, "   ab"},
		{"×3", 4, AlignLeft, "×3  "},
		{"toolong", 3, AlignRight, "toolong"},
		{"", 0, AlignLeft, ""},
	}
	for _, tc := range testCases {
		var b strings.Builder
		WritePadded(&b, tc.s, tc.width, tc.align)
		require.Equal(t, tc.want, b.String())
	}
}

func TestColumn(t *testing.T) {
	var c Column
	require.Equal(t, 0, c.Width())
	for _, s := range []string{"a", "| b (×10):", "abc"} {
		c.Fit(s)
	}
	require.Equal(t, 10, c.Width())
}
