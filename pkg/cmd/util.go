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
	"io"
	"os"

	"github.com/consensys/go-subcount/pkg/batch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed int, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the batch named on the command line (or from stdin if none is named),
// exiting with a diagnostic if it cannot be read or is malformed.
func readBatch(cmd *cobra.Command, args []string) *batch.Batch {
	var (
		filename = "-"
		reader   io.Reader
	)
	//
	if len(args) > 0 {
		filename = args[0]
	}
	//
	format := batchFormat(cmd, filename)
	//
	if filename == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Info("reading batch from terminal (terminate with EOF)")
		}
		//
		reader = os.Stdin
	} else {
		file, err := os.Open(filename)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		defer file.Close()
		//
		reader = file
	}
	//
	log.Debugf("reading %s batch from %s", format, filename)
	//
	input, err := batch.Read(reader, format)
	if err != nil {
		log.Errorf("%s: %v", filename, err)
		os.Exit(2)
	}
	//
	log.Debugf("read array of length %d with %d queries", len(input.Values), len(input.Queries))
	//
	return input
}

// Determine the batch format, either from the --format flag or from the
// filename.
func batchFormat(cmd *cobra.Command, filename string) batch.Format {
	name := GetString(cmd, "format")
	//
	if name == "" {
		return batch.FormatOf(filename)
	}
	//
	format, err := batch.ParseFormat(name)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return format
}
