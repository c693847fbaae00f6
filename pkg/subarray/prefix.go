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

// Prefix holds the running totals needed to answer range queries in constant
// time (plus one binary search).  Both slices have length n+1, with slot 0
// holding zero.
type Prefix struct {
	// Valid[i] is the number of valid subarrays whose right endpoint is at
	// most i (with no restriction on the left endpoint).
	Valid []uint64
	// Threshold[i] is the sum f[1] + ... + f[i].
	Threshold []uint64
}

// BuildPrefix constructs the prefix sums for a given threshold array.
func BuildPrefix(threshold []uint) Prefix {
	var (
		n     = uint(len(threshold)) - 1
		valid = make([]uint64, n+1)
		sums  = make([]uint64, n+1)
	)
	//
	for i := uint(1); i <= n; i++ {
		f := threshold[i]
		// Sanity check
		if f < 1 || f > i {
			panic("invalid threshold")
		}
		//
		valid[i] = valid[i-1] + uint64(i-f+1)
		sums[i] = sums[i-1] + uint64(f)
	}
	//
	return Prefix{valid, sums}
}
