// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TablePrinter_01(t *testing.T) {
	var sb strings.Builder
	//
	table := NewTablePrinter(2)
	table.AddRow("i", "value")
	table.AddValues(1, -42)
	table.AddValues(10, 7)
	//
	require.NoError(t, table.Print(&sb))
	assert.Equal(t, uint(2), table.Width())
	assert.Equal(t, uint(3), table.Height())
	assert.Equal(t, "  i | value |\n  1 |   -42 |\n 10 |     7 |\n", sb.String())
}

func Test_TablePrinter_02(t *testing.T) {
	var sb strings.Builder
	//
	table := NewTablePrinter(1)
	table.AddRow("abcdef")
	table.SetMaxWidth(3)
	//
	require.NoError(t, table.Print(&sb))
	assert.Equal(t, " abc |\n", sb.String())
	assert.Panics(t, func() { table.AddRow("a", "b") })
}

func Test_PerfStats(t *testing.T) {
	stats := NewPerfStats()
	report := stats.Report()
	//
	assert.GreaterOrEqual(t, int64(report.Elapsed), int64(0))
	stats.Log("nothing")
}
