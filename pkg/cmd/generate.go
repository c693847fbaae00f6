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
	"math/rand"
	"os"
	"time"

	"github.com/consensys/go-subcount/pkg/batch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate a random batch.",
	Long:  `Generate a random batch and write it to stdout, for use in testing or benchmarking.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			seed = GetInt(cmd, "seed")
			cfg  = batch.RandomConfig{
				Length:  GetUint(cmd, "len"),
				Queries: GetUint(cmd, "queries"),
				MinElem: GetInt(cmd, "min-elem"),
				MaxElem: GetInt(cmd, "max-elem"),
			}
		)
		//
		if cfg.MinElem > cfg.MaxElem {
			log.Errorf("empty element range [%d,%d]", cfg.MinElem, cfg.MaxElem)
			os.Exit(2)
		}
		//
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		//
		log.Debugf("generating batch with seed %d", seed)
		//
		var (
			output = batch.Random(rand.New(rand.NewSource(seed)), cfg)
			err    error
		)
		//
		switch batchFormat(cmd, "-") {
		case batch.YAML:
			err = batch.WriteYaml(os.Stdout, output)
		default:
			err = batch.WriteText(os.Stdout, output)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("len", 10, "length of the array")
	generateCmd.Flags().Uint("queries", 10, "number of queries")
	generateCmd.Flags().Int64("min-elem", 0, "smallest element")
	generateCmd.Flags().Int64("max-elem", 9, "largest element")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 for time-based)")
}
