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
package subarray

import (
	"math/rand"
)

// Maximum length of arrays enumerated exhaustively.
const maxExhaustiveLen = 7

// Number of distinct values used when enumerating arrays exhaustively.
const exhaustiveAlphabet = 3

// Enumerate every array of length n whose elements are drawn from
// [0,alphabet), calling fn on each.  The same backing slice is reused between
// calls.
func enumerateArrays(n uint, alphabet int64, fn func([]int64)) {
	values := make([]int64, n)
	//
	for {
		fn(values)
		// Increment as a base-alphabet counter
		i := 0
		for ; i < len(values) && values[i] == alphabet-1; i++ {
			values[i] = 0
		}
		//
		if i == len(values) {
			return
		}
		//
		values[i]++
	}
}

// Enumerate every array of length 1..maxExhaustiveLen.
func enumerateSmallArrays(fn func([]int64)) {
	for n := uint(1); n <= maxExhaustiveLen; n++ {
		enumerateArrays(n, exhaustiveAlphabet, fn)
	}
}

// Generate a random array of the given length with values in [lo,hi].
func randomArray(rng *rand.Rand, n uint, lo, hi int64) []int64 {
	values := make([]int64, n)
	//
	for i := range values {
		values[i] = lo + rng.Int63n(hi-lo+1)
	}
	//
	return values
}
