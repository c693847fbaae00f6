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
package test

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-subcount/pkg/batch"
	"github.com/consensys/go-subcount/pkg/subarray"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the batch files and their expected answers are found.
const TestDir = "../../testdata"

// Check that answering the queries of a given batch file produces exactly the
// expected output.  The batch is found in "<test>.<ext>" and the expected
// answers in "<test>.out".
func Check(t *testing.T, test string, ext string) {
	var (
		batchFile    = fmt.Sprintf("%s/%s.%s", TestDir, test, ext)
		expectedFile = fmt.Sprintf("%s/%s.out", TestDir, test)
		output       bytes.Buffer
	)
	// Enable testing each batch in parallel
	t.Parallel()
	//
	input := readBatchFile(t, batchFile)
	expected := readFile(t, expectedFile)
	// Answer queries
	answers := subarray.NewIndex(input.Values).CountAll(input.Queries)
	//
	if err := batch.WriteAnswers(&output, answers); err != nil {
		t.Fatal(err)
	}
	// Compare byte-for-byte
	if output.String() != string(expected) {
		t.Errorf("%s: expected \"%s\", got \"%s\"", batchFile, strings.TrimSpace(string(expected)),
			strings.TrimSpace(output.String()))
	}
	// Check answers against the oracle as well
	checkEnumeration(t, batchFile, input, answers)
}

// Check a set of answers against enumeration.
func checkEnumeration(t *testing.T, test string, input *batch.Batch, answers []uint64) {
	bounds := subarray.NaiveBounds(input.Values)
	//
	for i, q := range input.Queries {
		if expected := subarray.CountBrute(bounds, q.Left, q.Right); expected != answers[i] {
			t.Errorf("%s: query %d (%s) expected %d, got %d", test, i+1, q, expected, answers[i])
		}
	}
}

// CheckRejected checks that a given batch file fails to be read, and that the
// error message contains the expected fragment.
func CheckRejected(t *testing.T, input string, format batch.Format, fragment string) {
	_, err := batch.Read(strings.NewReader(input), format)
	//
	if err == nil {
		t.Errorf("batch %s should have been rejected", strconv.Quote(input))
	} else if !strings.Contains(err.Error(), fragment) {
		t.Errorf("batch %s rejected with \"%s\", expected \"%s\"", strconv.Quote(input), err, fragment)
	}
}

func readBatchFile(t *testing.T, filename string) *batch.Batch {
	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	defer file.Close()
	//
	input, err := batch.Read(file, batch.FormatOf(filename))
	if err != nil {
		t.Fatalf("%s: %v", filename, err)
	}
	//
	return input
}

func readFile(t *testing.T, filename string) []byte {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	return bytes
}
