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

func Test_Threshold_01(t *testing.T) {
	f := BuildThresholds(ScanBounds([]int64{2, 1, 3, 1, 2}))
	assert.Equal(t, []uint{0, 1, 1, 1, 2, 2}, f)
}

func Test_Threshold_Single(t *testing.T) {
	f := BuildThresholds(ScanBounds([]int64{42}))
	assert.Equal(t, []uint{0, 1}, f)
}

func Test_Threshold_Decreasing(t *testing.T) {
	f := BuildThresholds(ScanBounds([]int64{5, 4, 3, 2, 1}))
	assert.Equal(t, []uint{0, 1, 1, 2, 3, 4}, f)
}

func Test_Threshold_Increasing(t *testing.T) {
	f := BuildThresholds(ScanBounds([]int64{1, 2, 3, 4}))
	assert.Equal(t, []uint{0, 1, 1, 1, 1}, f)
}

func Test_OrderByRight(t *testing.T) {
	bounds := ScanBounds([]int64{2, 1, 3, 1, 2})
	order := orderByRight(bounds)
	// Right = [2,4,4,6,6]
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, order)
	//
	bounds = ScanBounds([]int64{1, 2, 3, 4})
	assert.Equal(t, []uint{1, 2, 3, 4}, orderByRight(bounds))
	//
	bounds = ScanBounds([]int64{3, 1, 2})
	// Right = [2,4,4]
	assert.Equal(t, []uint{1, 2, 3}, orderByRight(bounds))
	//
	bounds = ScanBounds([]int64{1, 3, 2})
	// Right = [4,3,4]
	assert.Equal(t, []uint{2, 1, 3}, orderByRight(bounds))
}

// Compare against the definition f[R] = 1 + max{Left[i] | Right[i] <= R}.
func Test_Threshold_MatchesDefinition(t *testing.T) {
	enumerateSmallArrays(func(values []int64) {
		bounds := NaiveBounds(values)
		f := BuildThresholds(ScanBounds(values))
		//
		for r := uint(1); r <= bounds.Len(); r++ {
			mx := uint(0)
			//
			for i := uint(1); i <= bounds.Len(); i++ {
				if bounds.Right[i] <= r {
					mx = max(mx, bounds.Left[i])
				}
			}
			//
			require.Equal(t, mx+1, f[r], "array %v, endpoint %d", values, r)
		}
	})
}

func Test_Threshold_Properties(t *testing.T) {
	enumerateSmallArrays(func(values []int64) {
		f := BuildThresholds(ScanBounds(values))
		//
		for r := uint(1); r < uint(len(f)); r++ {
			require.GreaterOrEqual(t, f[r], uint(1), "array %v, endpoint %d", values, r)
			require.LessOrEqual(t, f[r], r, "array %v, endpoint %d", values, r)
			// Window queries rely on thresholds being sorted.
			require.GreaterOrEqual(t, f[r], f[r-1], "array %v, endpoint %d", values, r)
		}
	})
}

// Validity of [l,R] holds exactly for l in [f[R],R].
func Test_Threshold_CharacterisesValidity(t *testing.T) {
	enumerateSmallArrays(func(values []int64) {
		f := BuildThresholds(ScanBounds(values))
		//
		for r := uint(1); r <= uint(len(values)); r++ {
			for l := uint(1); l <= r; l++ {
				valid := !HasNonIncreasingTriple(values, l, r)
				require.Equal(t, l >= f[r], valid, "array %v, window [%d,%d]", values, l, r)
			}
		}
	})
}
