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
	"path"
	"strings"

	"github.com/consensys/go-subcount/pkg/subarray"
	"github.com/pkg/errors"
)

// Batch is a single offline problem instance: an array together with the
// complete set of window queries to be answered over it.
type Batch struct {
	// Values of the array, in order.
	Values []int64
	// Queries over the array using 1-based inclusive positions.
	Queries []subarray.Query
}

// Format identifies an encoding of a batch.
type Format uint8

const (
	// TEXT is the whitespace separated token format: n, the n values, q and then
	// q pairs of bounds.
	TEXT Format = iota
	// YAML is a document with an "array" sequence and a "queries" sequence of
	// pairs.
	YAML
)

func (f Format) String() string {
	switch f {
	case TEXT:
		return "text"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return TEXT, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return TEXT, errors.Errorf("unknown batch format \"%s\"", name)
	}
}

// FormatOf determines the format of a batch file from its extension, falling
// back to TEXT.
func FormatOf(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TEXT
	}
}

// Read a complete batch in the given format and check it is well formed.
func Read(r io.Reader, format Format) (*Batch, error) {
	var (
		batch *Batch
		err   error
	)
	//
	switch format {
	case TEXT:
		batch, err = ReadText(r)
	case YAML:
		batch, err = ReadYaml(r)
	default:
		return nil, errors.Errorf("unsupported batch format %s", format)
	}
	//
	if err != nil {
		return nil, err
	} else if err = batch.Validate(); err != nil {
		return nil, err
	}
	//
	return batch, nil
}

// Validate checks that every query lies within the array and has its left
// bound no larger than its right bound.
func (p *Batch) Validate() error {
	n := uint(len(p.Values))
	//
	for i, q := range p.Queries {
		switch {
		case q.Left < 1 || q.Right > n:
			return errors.Errorf("query %d: window %s outside array bounds [1,%d]", i+1, q, n)
		case q.Left > q.Right:
			return errors.Errorf("query %d: window %s has left bound after right bound", i+1, q)
		}
	}
	//
	return nil
}
