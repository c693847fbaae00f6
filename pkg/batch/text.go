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
	"bufio"
	"io"
	"strconv"

	"github.com/consensys/go-subcount/pkg/subarray"
	"github.com/pkg/errors"
)

// ErrUnexpectedEnd is reported when the input ends before all of the declared
// values or queries have been read.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// ErrTrailingInput is reported when tokens remain after the last query.
var ErrTrailingInput = errors.New("unexpected input after last query")

// Maximum size of a single token.
const maxTokenSize = 1024 * 1024

// tokenizer splits its input into whitespace separated tokens, keeping track
// of how many have been read so that errors can be located.
type tokenizer struct {
	scanner *bufio.Scanner
	count   uint
}

func newTokenizer(r io.Reader) *tokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	//
	return &tokenizer{scanner, 0}
}

// Read the next token.
func (p *tokenizer) next(what string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		//
		return "", errors.Wrapf(ErrUnexpectedEnd, "expected %s (token %d)", what, p.count+1)
	}
	//
	p.count++
	//
	return p.scanner.Text(), nil
}

func (p *tokenizer) nextInt(what string) (int64, error) {
	token, err := p.next(what)
	if err != nil {
		return 0, err
	}
	//
	val, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed %s \"%s\" (token %d)", what, token, p.count)
	}
	//
	return val, nil
}

func (p *tokenizer) nextUint(what string) (uint, error) {
	token, err := p.next(what)
	if err != nil {
		return 0, err
	}
	//
	val, err := strconv.ParseUint(token, 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed %s \"%s\" (token %d)", what, token, p.count)
	}
	//
	return uint(val), nil
}

// Check that nothing but whitespace remains.
func (p *tokenizer) end() error {
	if p.scanner.Scan() {
		return errors.Wrapf(ErrTrailingInput, "token %d \"%s\"", p.count+1, p.scanner.Text())
	}
	//
	return errors.Wrap(p.scanner.Err(), "reading input")
}

// ReadText reads a batch in the TEXT format.  The whole input is consumed
// before returning.  Queries are not checked against the array bounds (see
// Validate).
func ReadText(r io.Reader) (*Batch, error) {
	var tokens = newTokenizer(r)
	//
	n, err := tokens.nextUint("array length")
	if err != nil {
		return nil, err
	}
	//
	values, err := readValues(tokens, n)
	if err != nil {
		return nil, err
	}
	//
	q, err := tokens.nextUint("query count")
	if err != nil {
		return nil, err
	}
	//
	queries, err := readQueries(tokens, q)
	if err != nil {
		return nil, err
	}
	//
	if err = tokens.end(); err != nil {
		return nil, err
	}
	//
	return &Batch{values, queries}, nil
}

func readValues(tokens *tokenizer, n uint) ([]int64, error) {
	// Don't trust the declared length for preallocation.
	var values = make([]int64, 0, min(n, maxPrealloc))
	//
	for i := uint(0); i < n; i++ {
		val, err := tokens.nextInt("array element")
		if err != nil {
			return nil, err
		}
		//
		values = append(values, val)
	}
	//
	return values, nil
}

func readQueries(tokens *tokenizer, q uint) ([]subarray.Query, error) {
	var queries = make([]subarray.Query, 0, min(q, maxPrealloc))
	//
	for i := uint(0); i < q; i++ {
		left, err := tokens.nextUint("query left bound")
		if err != nil {
			return nil, err
		}
		//
		right, err := tokens.nextUint("query right bound")
		if err != nil {
			return nil, err
		}
		//
		queries = append(queries, subarray.NewQuery(left, right))
	}
	//
	return queries, nil
}

// Upper bound on slice capacity allocated from declared (rather than actual)
// counts.
const maxPrealloc = 1 << 20

// WriteText writes a batch in the TEXT format.
func WriteText(w io.Writer, batch *Batch) error {
	var buf []byte
	//
	buf = strconv.AppendInt(buf, int64(len(batch.Values)), 10)
	buf = append(buf, '\n')
	//
	for i, v := range batch.Values {
		if i != 0 {
			buf = append(buf, ' ')
		}
		//
		buf = strconv.AppendInt(buf, v, 10)
	}
	//
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, int64(len(batch.Queries)), 10)
	buf = append(buf, '\n')
	//
	for _, q := range batch.Queries {
		buf = strconv.AppendUint(buf, uint64(q.Left), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(q.Right), 10)
		buf = append(buf, '\n')
	}
	//
	_, err := w.Write(buf)
	//
	return err
}

// WriteAnswers writes the answers on a single line, separated by single spaces
// and terminated by a newline.
func WriteAnswers(w io.Writer, answers []uint64) error {
	var (
		out = bufio.NewWriter(w)
		buf = make([]byte, 0, 32)
	)
	//
	for i, a := range answers {
		buf = buf[:0]
		//
		if i != 0 {
			buf = append(buf, ' ')
		}
		//
		buf = strconv.AppendUint(buf, a, 10)
		//
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}
	//
	if err := out.WriteByte('\n'); err != nil {
		return err
	}
	//
	return out.Flush()
}
