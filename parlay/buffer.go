// Copyright 2025 go-parlay Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parlay

// Buffer is a fixed-size output buffer whose slots are each constructed
// exactly once. The compaction engines allocate one, scatter kept
// elements into disjoint slots from concurrent tasks, and hand the
// storage to the caller; no slot is ever default-constructed and then
// overwritten.
//
// Go zeroes all allocations, so "uninitialized" here means only that no
// slot may be observed before its single construction. Builds tagged
// parlaydebug enforce the single-construction invariant with an atomic
// bitmap; release builds pay nothing.
type Buffer[T any] struct {
	data  []T
	guard constructGuard
}

// NewUninitialized allocates a buffer with n unconstructed slots.
func NewUninitialized[T any](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n), guard: newConstructGuard(n)}
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int { return len(b.data) }

// ConstructAt stores v into slot i. Each slot must be constructed at most
// once, ever; constructing distinct slots from concurrent tasks is safe.
func (b *Buffer[T]) ConstructAt(i int, v T) {
	b.guard.construct(i)
	b.data[i] = v
}

// Take returns the underlying storage. The buffer must not be used after
// Take; callers are expected to have constructed every slot.
func (b *Buffer[T]) Take() []T {
	data := b.data
	b.data = nil
	return data
}
