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

import "cmp"

// Numeric is a constraint covering the built-in numeric types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Monoid pairs an identity value with an associative binary combinator.
// Reduce and Scan require Combine to be associative and
// Combine(Identity, x) == x for all x; they never require commutativity.
//
// Monoids are plain call-scoped values: the engines neither retain nor
// cache them. Combine must not mutate state read by concurrently executing
// calls.
type Monoid[T any] struct {
	Identity T
	Combine  func(T, T) T
}

// AddMonoid returns the addition monoid with identity zero.
func AddMonoid[T Numeric]() Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return a + b }}
}

// MaxMonoid returns the maximum monoid. lowest must compare less than or
// equal to every value that will be combined; it is the identity.
func MaxMonoid[T cmp.Ordered](lowest T) Monoid[T] {
	return Monoid[T]{Identity: lowest, Combine: func(a, b T) T { return max(a, b) }}
}

// MinMonoid returns the minimum monoid. highest must compare greater than
// or equal to every value that will be combined; it is the identity.
func MinMonoid[T cmp.Ordered](highest T) Monoid[T] {
	return Monoid[T]{Identity: highest, Combine: func(a, b T) T { return min(a, b) }}
}
