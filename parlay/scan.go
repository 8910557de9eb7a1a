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

// scanSerial scans in into out with offset as the initial accumulator and
// returns the total. out may alias in. The exclusive variant reads each
// element before writing its slot, so in-place scans stay correct.
func scanSerial[T any](in, out []T, m Monoid[T], offset T, inclusive bool) T {
	r := offset
	if inclusive {
		for i, v := range in {
			r = m.Combine(r, v)
			out[i] = r
		}
	} else {
		for i := range in {
			t := in[i]
			out[i] = r
			r = m.Combine(r, t)
		}
	}
	return r
}

// scanImpl is the three-phase work-efficient scan:
//
//  1. reduce each block serially into sums, one task per block;
//  2. exclusive-scan sums sequentially in place (O(blocks), the
//     bottleneck phase, kept cheap by the block size);
//  3. re-scan each block serially with sums[i] as the seed, one task per
//     block, writing into out.
//
// Within a block the combinator runs strictly left to right, and each
// block's seed is injected before any of its elements, so the operation
// order is exactly that of the sequential scan. This matters for
// non-commutative monoids.
func scanImpl[T any](pool *workerpool.Pool, in, out []T, m Monoid[T], inclusive bool, fl Flags) T {
	n := len(in)
	l := NumBlocks(n, BlockSize)
	if l <= 2 || fl.Sequential {
		return scanSerial(in, out, m, m.Identity, inclusive)
	}
	sums := make([]T, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		sums[i] = reduceSerial(in[s:e], m)
	})
	total := scanSerial(sums, sums, m, m.Identity, false)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		scanSerial(in[s:e], out[s:e], m, sums[i], inclusive)
	})
	return total
}

// Scan returns the exclusive prefix sums of a under m, and the total: the
// i-th output combines every element before index i, and excludes a[i].
func Scan[T any](pool *workerpool.Pool, a []T, m Monoid[T], fl Flags) ([]T, T) {
	out := make([]T, len(a))
	total := scanImpl(pool, a, out, m, false, fl)
	return out, total
}

// ScanInclusive returns the inclusive prefix sums of a under m, and the
// total: the i-th output combines every element up to and including a[i].
func ScanInclusive[T any](pool *workerpool.Pool, a []T, m Monoid[T], fl Flags) ([]T, T) {
	out := make([]T, len(a))
	total := scanImpl(pool, a, out, m, true, fl)
	return out, total
}

// ScanInplace writes the exclusive prefix sums of a back into a and
// returns the total.
func ScanInplace[T any](pool *workerpool.Pool, a []T, m Monoid[T], fl Flags) T {
	return scanImpl(pool, a, a, m, false, fl)
}

// ScanInclusiveInplace writes the inclusive prefix sums of a back into a
// and returns the total.
func ScanInclusiveInplace[T any](pool *workerpool.Pool, a []T, m Monoid[T], fl Flags) T {
	return scanImpl(pool, a, a, m, true, fl)
}
