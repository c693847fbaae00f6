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

// NaiveBounds computes the same bounds as ScanBounds, but directly from their
// definition by scanning outwards from each position.  This takes quadratic
// time and exists only as a reference.
func NaiveBounds(values []int64) Bounds {
	var (
		n     = uint(len(values))
		left  = make([]uint, n+1)
		right = make([]uint, n+1)
	)
	//
	for i := uint(1); i <= n; i++ {
		left[i] = 0
		right[i] = n + 1
		//
		for j := i - 1; j >= 1; j-- {
			if values[j-1] >= values[i-1] {
				left[i] = j
				break
			}
		}
		//
		for j := i + 1; j <= n; j++ {
			if values[j-1] <= values[i-1] {
				right[i] = j
				break
			}
		}
	}
	//
	return Bounds{left, right}
}

// IsValid determines whether the subarray [left,right] (1-based, inclusive) is
// valid, using only the definition of the bounds.  A subarray is invalid when it
// strictly encloses some position i together with both its left bound and its
// right bound.
func IsValid(bounds Bounds, left, right uint) bool {
	for i := left + 1; i < right; i++ {
		if bounds.Left[i] >= left && bounds.Right[i] <= right {
			return false
		}
	}
	//
	return true
}

// HasNonIncreasingTriple determines whether the subarray [left,right] contains
// positions j < i < k with a[j] >= a[i] >= a[k].  A subarray is valid exactly
// when it contains no such triple.
func HasNonIncreasingTriple(values []int64, left, right uint) bool {
	for i := left + 1; i < right; i++ {
		mid := values[i-1]
		above, below := false, false
		//
		for j := left; j < i && !above; j++ {
			above = values[j-1] >= mid
		}
		//
		for k := i + 1; k <= right && !below; k++ {
			below = values[k-1] <= mid
		}
		//
		if above && below {
			return true
		}
	}
	//
	return false
}

// CountBrute counts the valid subarrays within [left,right] by enumerating every
// one of them.  Since extending a subarray cannot make it valid again, the
// enumeration for each left endpoint stops at the first invalid subarray.
func CountBrute(bounds Bounds, left, right uint) uint64 {
	var count uint64
	//
	for x := left; x <= right; x++ {
		for y := x; y <= right && IsValid(bounds, x, y); y++ {
			count++
		}
	}
	//
	return count
}
