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

// BuildThresholds computes, for every right endpoint R in 1..n, the minimal left
// endpoint f[R] such that [l,R] is valid for all l in [f[R],R].  That is:
//
//	f[R] = 1 + max{ Left[i] | Right[i] <= R }
//
// where the maximum of the empty set is 0.  The returned slice has length n+1
// and slot 0 is unused.  Since the maximum is taken over a set which only grows
// with R, the result is non-decreasing.
func BuildThresholds(bounds Bounds) []uint {
	var (
		n         = bounds.Len()
		order     = orderByRight(bounds)
		threshold = make([]uint, n+1)
		mx, p     uint
	)
	//
	for r := uint(1); r <= n; r++ {
		// Fold in every index closed out by r
		for ; p < n && bounds.Right[order[p]] <= r; p++ {
			mx = max(mx, bounds.Left[order[p]])
		}
		//
		threshold[r] = mx + 1
	}
	//
	return threshold
}

// Order the positions 1..n by ascending right bound.  Right bounds lie in
// [2,n+1], so a counting sort is used rather than a comparison sort.
func orderByRight(bounds Bounds) []uint {
	var (
		n       = bounds.Len()
		offsets = make([]uint, n+3)
		order   = make([]uint, n)
	)
	// Count bucket sizes, shifted by one so the prefix sum gives start offsets.
	for i := uint(1); i <= n; i++ {
		offsets[bounds.Right[i]+1]++
	}
	//
	for r := 1; r < len(offsets); r++ {
		offsets[r] += offsets[r-1]
	}
	// Distribute
	for i := uint(1); i <= n; i++ {
		r := bounds.Right[i]
		order[offsets[r]] = i
		offsets[r]++
	}
	//
	return order
}
