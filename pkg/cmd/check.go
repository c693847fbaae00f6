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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-subcount/pkg/subarray"
	"github.com/consensys/go-subcount/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [batch]",
	Short: "Cross-check the answers for a batch against exhaustive enumeration.",
	Long: `Answer every query of a batch both using the precomputed index and by
enumerating every subarray of the window, reporting any disagreement.  Since
enumeration is expensive, this is limited to short arrays.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			maxLen = GetUint(cmd, "max-len")
			input  = readBatch(cmd, args)
		)
		//
		if uint(len(input.Values)) > maxLen {
			log.Errorf("array length %d exceeds %d (see --max-len)", len(input.Values), maxLen)
			os.Exit(2)
		}
		//
		index := subarray.NewIndex(input.Values)
		answers := index.CountAll(input.Queries)
		//
		if mismatches := crossCheck(input.Values, input.Queries, answers); len(mismatches) > 0 {
			reportMismatches(mismatches)
			os.Exit(4)
		}
		//
		fmt.Printf("%d queries checked\n", len(input.Queries))
	},
}

// mismatch records a query for which the index and the enumeration disagree.
type mismatch struct {
	query    subarray.Query
	expected uint64
	actual   uint64
}

// Recompute every answer by enumeration, returning those which differ.
func crossCheck(values []int64, queries []subarray.Query, answers []uint64) []mismatch {
	var (
		mismatches []mismatch
		bounds     = subarray.NaiveBounds(values)
	)
	//
	for i, q := range queries {
		if expected := subarray.CountBrute(bounds, q.Left, q.Right); expected != answers[i] {
			mismatches = append(mismatches, mismatch{q, expected, answers[i]})
		}
	}
	//
	return mismatches
}

func reportMismatches(mismatches []mismatch) {
	table := util.NewTablePrinter(3)
	table.AddRow("window", "expected", "actual")
	//
	for _, m := range mismatches {
		table.AddValues(m.query, m.expected, m.actual)
	}
	//
	log.Errorf("%d answers differ from enumeration", len(mismatches))
	//
	if err := table.Print(os.Stderr); err != nil {
		log.Error(err)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("max-len", 500, "maximum array length to check")
}
