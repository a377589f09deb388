// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package humanize

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestHumanize(t *testing.T) {
	datadriven.RunTest(t, "testdata/humanize", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "percent":
		default:
			td.Fatalf(t, "invalid command %q", td.Cmd)
		}
		var buf bytes.Buffer
		for row := range crstrings.LinesSeq(td.Input) {
			val, err := strconv.ParseFloat(row, 64)
			if err != nil {
				td.Fatalf(t, "error parsing %q: %v", row, err)
			}
			fmt.Fprintf(&buf, "%s\n", Percent(val))
		}
		return buf.String()
	})
}

func TestPercentNonFinite(t *testing.T) {
	require.Equal(t, "0.00%", Percent(math.NaN()))
	require.Equal(t, "0.00%", Percent(math.Inf(1)))
}

func TestCount(t *testing.T) {
	require.Equal(t, "7", Count(7))
	require.Equal(t, Count(int64(7)), Count(uint8(7)))
}
