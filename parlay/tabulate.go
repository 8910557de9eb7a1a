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

import "github.com/ajroetker/go-parlay/parlay/workerpool"

// Tabulate returns a slice of length n whose i-th element is f(i),
// evaluating f in parallel block by block.
func Tabulate[T any](pool *workerpool.Pool, n int, f func(int) T, fl Flags) []T {
	out := make([]T, n)
	slicedFor(pool, n, BlockSize, fl, func(_, s, e int) {
		for i := s; i < e; i++ {
			out[i] = f(i)
		}
	})
	return out
}

// Map returns f applied to every element of a, in order.
func Map[T, U any](pool *workerpool.Pool, a []T, f func(T) U, fl Flags) []U {
	out := make([]U, len(a))
	slicedFor(pool, len(a), BlockSize, fl, func(_, s, e int) {
		for i := s; i < e; i++ {
			out[i] = f(a[i])
		}
	})
	return out
}

// Copy copies src into dst in parallel. dst must hold at least len(src)
// elements.
func Copy[T any](pool *workerpool.Pool, dst, src []T, fl Flags) {
	slicedFor(pool, len(src), BlockSize, fl, func(_, s, e int) {
		copy(dst[s:e], src[s:e])
	})
}
