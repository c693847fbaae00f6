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
package batch

import (
	"math/rand"

	"github.com/consensys/go-subcount/pkg/subarray"
)

// RandomConfig determines the shape of randomly generated batches.
type RandomConfig struct {
	// Length of the array.
	Length uint
	// Number of queries.
	Queries uint
	// Smallest element value (inclusive).
	MinElem int64
	// Largest element value (inclusive).
	MaxElem int64
}

// Random generates a batch with uniformly distributed elements and queries.
// Small value ranges produce many ties, which is where the interesting cases
// are.  A batch over an empty array has no queries.
func Random(rng *rand.Rand, cfg RandomConfig) *Batch {
	if cfg.MinElem > cfg.MaxElem {
		panic("invalid element range")
	}
	//
	var (
		values  = make([]int64, cfg.Length)
		queries []subarray.Query
		span    = uint64(cfg.MaxElem-cfg.MinElem) + 1
	)
	//
	for i := range values {
		if span == 0 {
			// Full int64 range
			values[i] = int64(rng.Uint64())
		} else {
			values[i] = cfg.MinElem + int64(rng.Uint64()%span)
		}
	}
	//
	if cfg.Length > 0 {
		queries = make([]subarray.Query, cfg.Queries)
		//
		for i := range queries {
			a := 1 + uint(rng.Int63n(int64(cfg.Length)))
			b := 1 + uint(rng.Int63n(int64(cfg.Length)))
			queries[i] = subarray.NewQuery(min(a, b), max(a, b))
		}
	}
	//
	return &Batch{values, queries}
}
