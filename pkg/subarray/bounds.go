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
	"github.com/consensys/go-subcount/pkg/util/collection/stack"
)

// Bounds records, for every position i of an array (1-based), the nearest
// positions on either side which stop i from dominating further.  Both slices
// have length n+1 and slot 0 is unused.
type Bounds struct {
	// Left[i] is the nearest j < i such that a[j] >= a[i], or 0 if none exists.
	Left []uint
	// Right[i] is the nearest j > i such that a[j] <= a[i], or n+1 if none
	// exists.
	Right []uint
}

// Len returns the number of array positions covered by these bounds.
func (p *Bounds) Len() uint {
	return uint(len(p.Left)) - 1
}

// ScanBounds computes the left and right bounds of every position in the given
// array using two monotonic stack passes.  Ties are broken asymmetrically: the
// left pass stops at an equal value (>=), as does the right pass (<=), so that
// a run of equal values is never treated as several independent extrema.
func ScanBounds(values []int64) Bounds {
	var (
		n     = uint(len(values))
		left  = make([]uint, n+1)
		right = make([]uint, n+1)
		// Each index is pushed once per pass, hence n suffices.
		stk = stack.NewStack[uint](n)
	)
	// Left to right: discard anything strictly smaller than the current value.
	for i := uint(1); i <= n; i++ {
		v := values[i-1]
		stk.PopWhile(func(j uint) bool { return values[j-1] < v })
		left[i] = stk.TopOr(0)
		stk.Push(i)
	}
	//
	stk.Clear()
	// Right to left: discard anything strictly larger than the current value.
	for i := n; i >= 1; i-- {
		v := values[i-1]
		stk.PopWhile(func(j uint) bool { return values[j-1] > v })
		right[i] = stk.TopOr(n + 1)
		stk.Push(i)
	}
	//
	return Bounds{left, right}
}
