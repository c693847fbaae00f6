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

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [flags] [batch]",
	Short: "print the precomputed index for a given batch.",
	Long: `Print the bounds, thresholds and prefix sums computed for the array of a
batch and, optionally, the answer to each of its queries.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			queries = GetFlag(cmd, "queries")
			width   = GetUint(cmd, "max-width")
			input   = readBatch(cmd, args)
			index   = subarray.NewIndex(input.Values)
		)
		//
		if err := printIndex(index, width); err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		if queries {
			fmt.Println()
			//
			if err := printAnswers(index, input.Queries, width); err != nil {
				log.Error(err)
				os.Exit(3)
			}
		}
	},
}

func printIndex(index *subarray.Index, width uint) error {
	var (
		bounds = index.Bounds()
		prefix = index.Prefix()
		table  = util.NewTablePrinter(7)
	)
	//
	table.AddRow("i", "a[i]", "left", "right", "f", "valid", "sum(f)")
	//
	for i := uint(1); i <= index.Len(); i++ {
		table.AddValues(i, index.Value(i), bounds.Left[i], bounds.Right[i], index.Threshold(i),
			prefix.Valid[i], prefix.Threshold[i])
	}
	//
	table.SetMaxWidth(width)
	//
	return table.Print(os.Stdout)
}

func printAnswers(index *subarray.Index, queries []subarray.Query, width uint) error {
	table := util.NewTablePrinter(2)
	table.AddRow("window", "count")
	//
	for _, q := range queries {
		table.AddValues(q, index.CountQuery(q))
	}
	//
	table.SetMaxWidth(width)
	//
	return table.Print(os.Stdout)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("queries", false, "print the answer to each query")
	debugCmd.Flags().Uint("max-width", 24, "maximum width of a column")
}
