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

import (
	"math"

	"github.com/ajroetker/go-parlay/parlay/workerpool"
)

// reduceSerial folds a left to right with the first element as the initial
// accumulator. Callers guarantee a is non-empty.
func reduceSerial[T any](a []T, m Monoid[T]) T {
	r := a[0]
	for _, v := range a[1:] {
		r = m.Combine(r, v)
	}
	return r
}

// Reduce folds a under m and returns the total. Reduce of an empty slice
// is m.Identity.
//
// The parallel algorithm is two-level: each block is folded serially, one
// task per block, and the per-block results are reduced by the same
// algorithm recursively. The block size grows with sqrt(n) so both the
// per-block serial cost and the number of blocks stay bounded for very
// large inputs. Total work is O(n); recursion depth is O(log n) on the
// per-block sums.
func Reduce[T any](pool *workerpool.Pool, a []T, m Monoid[T], fl Flags) T {
	n := len(a)
	blockSize := max(BlockSize, 4*int(math.Ceil(math.Sqrt(float64(n)))))
	l := NumBlocks(n, blockSize)
	if l == 0 {
		return m.Identity
	}
	if l == 1 || fl.Sequential {
		return reduceSerial(a, m)
	}
	sums := make([]T, l)
	slicedFor(pool, n, blockSize, fl, func(i, s, e int) {
		sums[i] = reduceSerial(a[s:e], m)
	})
	return Reduce(pool, sums, m, fl)
}
