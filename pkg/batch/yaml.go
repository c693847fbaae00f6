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
	"io"

	"github.com/consensys/go-subcount/pkg/subarray"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlBatch is the on-disk layout of a YAML batch, for example:
//
//	array: [3, 1, 2]
//	queries:
//	  - [1, 3]
//	  - [2, 2]
type yamlBatch struct {
	Array   []int64  `yaml:"array"`
	Queries [][]uint `yaml:"queries"`
}

// ReadYaml reads a batch in the YAML format.  Unknown keys are rejected.
func ReadYaml(r io.Reader) (*Batch, error) {
	var (
		raw     yamlBatch
		decoder = yaml.NewDecoder(r)
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&raw); err == io.EOF {
		return nil, errors.Wrap(ErrUnexpectedEnd, "empty yaml document")
	} else if err != nil {
		return nil, errors.Wrap(err, "malformed yaml batch")
	}
	//
	queries := make([]subarray.Query, len(raw.Queries))
	//
	for i, q := range raw.Queries {
		if len(q) != 2 {
			return nil, errors.Errorf("query %d: expected pair of bounds, found %d values", i+1, len(q))
		}
		//
		queries[i] = subarray.NewQuery(q[0], q[1])
	}
	//
	return &Batch{raw.Array, queries}, nil
}

// WriteYaml writes a batch in the YAML format.
func WriteYaml(w io.Writer, batch *Batch) error {
	raw := yamlBatch{batch.Values, make([][]uint, len(batch.Queries))}
	//
	for i, q := range batch.Queries {
		raw.Queries[i] = []uint{q.Left, q.Right}
	}
	//
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	//
	if err := encoder.Encode(&raw); err != nil {
		return err
	}
	//
	return encoder.Close()
}
