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

// Stack represents a reusable LIFO stack backed by a single slice.  A stack
// created with a capacity never reallocates provided it never holds more than
// that many items.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack whose backing array is allocated up front to
// hold capacity items.
func NewStack[T any](capacity uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, capacity)}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Top returns the item on top of the stack without removing it.
func (p *Stack[T]) Top() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("top of empty stack")
	}
	//
	return p.items[n-1]
}

// TopOr returns the item on top of the stack, or the given default when the
// stack is empty.
func (p *Stack[T]) TopOr(empty T) T {
	if len(p.items) == 0 {
		return empty
	}
	//
	return p.items[len(p.items)-1]
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item
}

// PopWhile pops items for as long as the stack is non-empty and the given
// predicate holds for its top item.  The number of items popped is returned.
func (p *Stack[T]) PopWhile(pred func(T) bool) uint {
	var n = len(p.items)
	//
	for n > 0 && pred(p.items[n-1]) {
		n--
	}
	//
	popped := uint(len(p.items) - n)
	p.items = p.items[:n]
	//
	return popped
}

// Clear removes all items from the stack whilst retaining its backing array for
// reuse.
func (p *Stack[T]) Clear() {
	p.items = p.items[:0]
}
