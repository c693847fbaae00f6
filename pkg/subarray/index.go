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
	"fmt"
	"sort"
)

// Query identifies an inclusive window [Left,Right] of an array, using 1-based
// positions.
type Query struct {
	Left  uint
	Right uint
}

// NewQuery constructs a new query for the window [left,right].
func NewQuery(left, right uint) Query {
	return Query{left, right}
}

func (q Query) String() string {
	return fmt.Sprintf("[%d,%d]", q.Left, q.Right)
}

// Index is the precomputed state required to answer window queries over a
// fixed array.  An index is never modified after construction and, hence, can
// be shared freely.
type Index struct {
	values    []int64
	bounds    Bounds
	threshold []uint
	prefix    Prefix
}

// NewIndex constructs an index for the given array.  The array is retained by
// the index and must not be modified afterwards.
func NewIndex(values []int64) *Index {
	bounds := ScanBounds(values)
	threshold := BuildThresholds(bounds)
	prefix := BuildPrefix(threshold)
	//
	return &Index{values, bounds, threshold, prefix}
}

// Len returns the length of the underlying array.
func (p *Index) Len() uint {
	return uint(len(p.values))
}

// Value returns the array element at the given (1-based) position.
func (p *Index) Value(i uint) int64 {
	return p.values[i-1]
}

// Bounds returns the left / right bounds of the underlying array.
func (p *Index) Bounds() Bounds {
	return p.bounds
}

// Threshold returns f[i], the smallest left endpoint for which a subarray
// ending at i is valid.
func (p *Index) Threshold(i uint) uint {
	return p.threshold[i]
}

// Prefix returns the prefix sums of this index.
func (p *Index) Prefix() Prefix {
	return p.prefix
}

// Count returns the number of valid subarrays [x,y] with left <= x <= y <=
// right.  This panics if the window is not contained within the array.
func (p *Index) Count(left, right uint) uint64 {
	if left < 1 || left > right || right > p.Len() {
		panic(fmt.Sprintf("invalid window [%d,%d] for array of length %d", left, right, p.Len()))
	}
	//
	var (
		valid = p.prefix.Valid
		sums  = p.prefix.Threshold
		// Assumes every right endpoint may start anywhere from its threshold.
		total = valid[right] - valid[left-1]
	)
	// Number of right endpoints in [left,right] whose threshold lies below left.
	// Since thresholds are non-decreasing these form a prefix.
	k := uint(sort.Search(int(right-left+1), func(i int) bool {
		return p.threshold[left+uint(i)] >= left
	}))
	// Endpoints t in [left,left+k) were counted as t-f[t]+1, but can start no
	// earlier than left, so each over counts by left-f[t].
	if k > 0 {
		last := left + k - 1
		over := uint64(k)*uint64(left) - (sums[last] - sums[left-1])
		total -= over
	}
	//
	return total
}

// CountQuery is a convenience wrapper around Count.
func (p *Index) CountQuery(q Query) uint64 {
	return p.Count(q.Left, q.Right)
}

// CountAll answers each query in turn, returning the answers in the same order.
func (p *Index) CountAll(queries []Query) []uint64 {
	answers := make([]uint64, len(queries))
	//
	for i, q := range queries {
		answers[i] = p.CountQuery(q)
	}
	//
	return answers
}
