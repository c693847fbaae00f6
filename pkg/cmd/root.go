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
	"runtime/debug"

	"github.com/consensys/go-subcount/pkg/batch"
	"github.com/consensys/go-subcount/pkg/subarray"
	"github.com/consensys/go-subcount/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "subcount [flags] [batch]",
	Short: "Count valid subarrays within offline window queries.",
	Long: `Read an array together with a batch of window queries [l,r] and, for each
query, count the subarrays lying within the window which contain no three
positions j < i < k with a[j] >= a[i] >= a[k].  The batch is read from the given
file or, when none is given (or it is "-"), from stdin.  Answers are written to
stdout on a single line.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("subcount ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			//
			return
		}
		//
		configureLogging(cmd)
		runCountCmd(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Answer every query of a batch, writing the answers to stdout.
func runCountCmd(cmd *cobra.Command, args []string) {
	var (
		check = GetFlag(cmd, "check")
		input = readBatch(cmd, args)
		stats = util.NewPerfStats()
	)
	//
	index := subarray.NewIndex(input.Values)
	//
	stats.Log(fmt.Sprintf("Indexing array of length %d", index.Len()))
	stats = util.NewPerfStats()
	//
	answers := index.CountAll(input.Queries)
	//
	stats.Log(fmt.Sprintf("Answering %d queries", len(input.Queries)))
	//
	if check {
		if mismatches := crossCheck(input.Values, input.Queries, answers); len(mismatches) > 0 {
			reportMismatches(mismatches)
			os.Exit(4)
		}
		//
		log.Debugf("all %d answers confirmed by enumeration", len(answers))
	}
	//
	if err := batch.WriteAnswers(os.Stdout, answers); err != nil {
		log.Error(err)
		os.Exit(3)
	}
}

// Set the logging level based on command-line flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") || GetFlag(cmd, "stats") {
		log.SetLevel(log.DebugLevel)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().Bool("check", false, "cross-check every answer by enumeration (slow)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("stats", false, "report time and memory used by each phase")
	rootCmd.PersistentFlags().String("format", "", "batch format (text or yaml); inferred from the file extension if omitted")
}
