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

// Package sort provides dual-pivot comparison quicksorts over slices: a
// serial variant, a fork-join in-place parallel variant, and a fully
// parallel variant that partitions through the compaction engine.
//
// All variants operate under a caller-supplied strict weak ordering and
// give no stability guarantee: equal-keyed elements may be reordered.
package sort

import (
	"unsafe"

	"github.com/ajroetker/go-parlay/parlay/workerpool"
)

// serialCutoff is the size below which the parallel sort stops forking.
const serialCutoff = 1 << 10

// baseCase reports whether n is small enough for insertion sort. Small
// elements tolerate a slightly larger threshold before the quadratic cost
// outweighs partitioning overhead.
func baseCase[T any](n int) bool {
	var zero T
	if unsafe.Sizeof(zero) >= 8 {
		return n < 16
	}
	return n < 24
}

// insertionSort sorts a with stable adjacent swaps. It handles near-sorted
// input well, which is exactly what the partitioned base cases look like.
func insertionSort[T any](a []T, less func(a, b T) bool) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && less(a[j], a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// sort5 swaps five elements sampled at even stride to the front of a and
// sorts them, yielding pivot candidates resistant to sorted, reversed,
// and duplicate-heavy inputs. Requires len(a) >= 5.
func sort5[T any](a []T, less func(a, b T) bool) {
	m := len(a) / 6
	for l := 0; l < 5; l++ {
		a[l], a[m*(l+1)] = a[m*(l+1)], a[l]
	}
	insertionSort(a[:5], less)
}

// split3 partitions a around two pivots drawn from sort5's sample: on
// return, elements below index l are less than the first pivot, elements
// in [l+1, m) lie between the pivots, and elements from m on are greater
// than the second pivot. midEq reports that the pivots compared equal, in
// which case the middle region is constant and needs no sorting.
// Requires len(a) >= 5.
func split3[T any](a []T, less func(a, b T) bool) (l, m int, midEq bool) {
	n := len(a)
	if n < 5 {
		panic("sort: split3 needs at least 5 elements")
	}
	sort5(a, less)

	// Move the second and fourth sampled elements to the front so a[0]
	// and a[1] are the pivots for the scan.
	a[0], a[1] = a[1], a[0]
	a[1], a[3] = a[3], a[1]
	p1, p2 := a[0], a[1]
	midEq = !less(p1, p2)

	l = 2
	r := n - 1
	for less(a[l], p1) {
		l++
	}
	for less(p2, a[r]) {
		r--
	}
	m = l

	// Invariants: below l is < p1, [l, m) is within [p1, p2],
	// [m, r] is unprocessed, above r is > p2.
	for m <= r {
		if less(a[m], p1) {
			a[m], a[l] = a[l], a[m]
			l++
		} else if less(p2, a[m]) {
			a[m], a[r] = a[r], a[m]
			if less(a[m], p1) {
				a[l], a[m] = a[m], a[l]
				l++
			}
			r--
			for less(p2, a[r]) {
				r--
			}
		}
		m++
	}

	// Swap the pivots into position.
	l -= 2
	a[1], a[l+1] = a[l+1], a[1]
	a[0], a[l] = a[l], a[0]
	a[l+1], a[r] = a[r], a[l+1]

	return l, m, midEq
}

// Quicksort sorts a in place under less, serially. It recurses into the
// smaller partitions and loops on the left region to bound stack depth,
// and skips the middle region entirely when the two pivots compare equal.
func Quicksort[T any](a []T, less func(a, b T) bool) {
	n := len(a)
	for !baseCase[T](n) {
		l, m, midEq := split3(a[:n], less)
		if !midEq {
			Quicksort(a[l+1:m], less)
		}
		Quicksort(a[m:n], less)
		n = l
	}
	insertionSort(a[:n], less)
}

// ParallelQuicksort sorts a in place under less, forking the recursive
// sorts of the three partitions onto pool. Below the serial cutoff it
// delegates to Quicksort; when the pivots compare equal the middle
// partition is already done and only two forks are issued.
func ParallelQuicksort[T any](pool *workerpool.Pool, a []T, less func(a, b T) bool) {
	n := len(a)
	if n < serialCutoff {
		Quicksort(a, less)
		return
	}
	l, m, midEq := split3(a, less)
	left := func() { ParallelQuicksort(pool, a[:l], less) }
	mid := func() { ParallelQuicksort(pool, a[l+1:m], less) }
	right := func() { ParallelQuicksort(pool, a[m:], less) }
	if !midEq {
		pool.Do3(left, mid, right)
	} else {
		pool.Do(left, right)
	}
}
