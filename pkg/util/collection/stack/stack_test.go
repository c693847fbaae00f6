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
package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_01(t *testing.T) {
	s := NewStack[uint](4)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint(7), s.TopOr(7))
	assert.Panics(t, func() { s.Pop() })
	assert.Panics(t, func() { s.Top() })
}

func Test_Stack_02(t *testing.T) {
	s := NewStack[uint](4)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, uint(3), s.Len())
	assert.Equal(t, uint(3), s.Top())
	assert.Equal(t, uint(3), s.Pop())
	assert.Equal(t, uint(2), s.TopOr(0))
	assert.Equal(t, uint(2), s.Len())
}

func Test_Stack_03(t *testing.T) {
	s := NewStack[int](8)
	for _, v := range []int{9, 7, 5, 3, 1} {
		s.Push(v)
	}
	// Pop everything below 6
	popped := s.PopWhile(func(v int) bool { return v < 6 })
	assert.Equal(t, uint(3), popped)
	assert.Equal(t, 7, s.Top())
	// Predicate never holds
	assert.Equal(t, uint(0), s.PopWhile(func(v int) bool { return v > 100 }))
	// Predicate always holds
	assert.Equal(t, uint(2), s.PopWhile(func(int) bool { return true }))
	assert.True(t, s.IsEmpty())
}

func Test_Stack_04(t *testing.T) {
	s := NewStack[uint](2)
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.True(t, s.IsEmpty())
	s.Push(5)
	assert.Equal(t, uint(5), s.Top())
}
