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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HasNonIncreasingTriple(t *testing.T) {
	values := []int64{2, 1, 3, 1, 2}
	// 3, 1, 2
	assert.False(t, HasNonIncreasingTriple(values, 3, 5))
	// 2 >= 1 >= 1
	assert.True(t, HasNonIncreasingTriple(values, 1, 4))
	// 1, 3, 1
	assert.False(t, HasNonIncreasingTriple(values, 2, 4))
	// Windows of length two or less never contain a triple
	assert.False(t, HasNonIncreasingTriple(values, 1, 2))
	assert.False(t, HasNonIncreasingTriple(values, 3, 3))
	// Ties count
	assert.True(t, HasNonIncreasingTriple([]int64{3, 3, 3}, 1, 3))
}

// The definition in terms of bounds agrees with the definition in terms of
// triples.
func Test_IsValid_MatchesTriples(t *testing.T) {
	enumerateSmallArrays(func(values []int64) {
		bounds := NaiveBounds(values)
		n := uint(len(values))
		//
		for l := uint(1); l <= n; l++ {
			for r := l; r <= n; r++ {
				expected := !HasNonIncreasingTriple(values, l, r)
				require.Equal(t, expected, IsValid(bounds, l, r), "array %v, window [%d,%d]", values, l, r)
			}
		}
	})
}

func Test_CountBrute_01(t *testing.T) {
	values := []int64{2, 1, 3, 1, 2}
	bounds := NaiveBounds(values)
	//
	assert.Equal(t, uint64(13), CountBrute(bounds, 1, 5))
	assert.Equal(t, uint64(6), CountBrute(bounds, 2, 4))
	assert.Equal(t, uint64(6), CountBrute(bounds, 3, 5))
	assert.Equal(t, uint64(1), CountBrute(bounds, 1, 1))
	assert.Equal(t, uint64(10), CountBrute(bounds, 2, 5))
}
