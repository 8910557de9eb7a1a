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
	"errors"
	"unsafe"

	"github.com/ajroetker/go-parlay/parlay/workerpool"
)

// ErrAliasedOutput is returned by SplitThree and SplitThreeFunc when the
// input and output are the same range. The scatter phase needs the output
// as scratch distinct from the input.
var ErrAliasedOutput = errors.New("parlay: split three input and output must be distinct ranges")

// All compaction primitives share one three-pass structure: count the kept
// elements per block, exclusive-scan the per-block counts into base
// offsets, then scatter each block's kept elements to baseOffset+localRank
// in parallel. Ranks follow the original scan order, so every operation
// here is stable, and the destination ranges of concurrent blocks are
// disjoint by construction.

func countSerial(flags []bool) int {
	c := 0
	for _, f := range flags {
		if f {
			c++
		}
	}
	return c
}

func packSerial[T any](a []T, flags []bool) []T {
	out := NewUninitialized[T](countSerial(flags))
	k := 0
	for i, keep := range flags {
		if keep {
			out.ConstructAt(k, a[i])
			k++
		}
	}
	return out.Take()
}

// packSerialAt scatters the kept elements of a into out starting at base.
func packSerialAt[T any](a []T, flags []bool, out *Buffer[T], base int) {
	k := base
	for i, keep := range flags {
		if keep {
			out.ConstructAt(k, a[i])
			k++
		}
	}
}

// packSerialInto is packSerialAt for already-constructed storage. It
// returns the number of elements written.
func packSerialInto[T any](a []T, flags []bool, out []T) int {
	k := 0
	for i, keep := range flags {
		if keep {
			out[k] = a[i]
			k++
		}
	}
	return k
}

// Pack returns the elements of a whose flag is set, in their original
// order. len(flags) must be len(a).
func Pack[T any](pool *workerpool.Pool, a []T, flags []bool, fl Flags) []T {
	n := len(a)
	l := NumBlocks(n, BlockSize)
	if l <= 1 || fl.Sequential {
		return packSerial(a, flags)
	}
	sums := make([]int, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		sums[i] = countSerial(flags[s:e])
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	out := NewUninitialized[T](m)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		packSerialAt(a[s:e], flags[s:e], out, sums[i])
	})
	return out.Take()
}

// PackInto packs the flagged elements of a into the front of out and
// returns how many were written. out must hold at least that many
// elements; it may not alias a.
func PackInto[T any](pool *workerpool.Pool, a []T, flags []bool, out []T, fl Flags) int {
	n := len(a)
	l := NumBlocks(n, BlockSize)
	if l <= 1 || fl.Sequential {
		return packSerialInto(a, flags, out)
	}
	sums := make([]int, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		sums[i] = countSerial(flags[s:e])
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		packSerialInto(a[s:e], flags[s:e], out[sums[i]:])
	})
	return m
}

// PackIndex returns the positions whose flag is set, in increasing order.
// It packs the index sequence 0..len(flags)-1 without materializing it.
func PackIndex(pool *workerpool.Pool, flags []bool, fl Flags) []int {
	n := len(flags)
	l := NumBlocks(n, BlockSize)
	if l <= 1 || fl.Sequential {
		out := NewUninitialized[int](countSerial(flags))
		k := 0
		for i, keep := range flags {
			if keep {
				out.ConstructAt(k, i)
				k++
			}
		}
		return out.Take()
	}
	sums := make([]int, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		sums[i] = countSerial(flags[s:e])
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	out := NewUninitialized[int](m)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		k := sums[i]
		for j := s; j < e; j++ {
			if flags[j] {
				out.ConstructAt(k, j)
				k++
			}
		}
	})
	return out.Take()
}

// Filter returns the elements of a satisfying pred, in their original
// order. pred runs exactly once per element: the counting pass records its
// verdicts in a per-element flag array consumed by the scatter pass.
func Filter[T any](pool *workerpool.Pool, a []T, pred func(T) bool, fl Flags) []T {
	n := len(a)
	l := NumBlocks(n, BlockSize)
	sums := make([]int, l)
	flags := make([]bool, n)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c := 0
		for j := s; j < e; j++ {
			flags[j] = pred(a[j])
			if flags[j] {
				c++
			}
		}
		sums[i] = c
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	out := NewUninitialized[T](m)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		packSerialAt(a[s:e], flags[s:e], out, sums[i])
	})
	return out.Take()
}

// FilterInto filters a into the front of out and returns how many
// elements satisfied pred. out may not alias a.
func FilterInto[T any](pool *workerpool.Pool, a, out []T, pred func(T) bool, fl Flags) int {
	n := len(a)
	l := NumBlocks(n, BlockSize)
	sums := make([]int, l)
	flags := make([]bool, n)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c := 0
		for j := s; j < e; j++ {
			flags[j] = pred(a[j])
			if flags[j] {
				c++
			}
		}
		sums[i] = c
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		packSerialInto(a[s:e], flags[s:e], out[sums[i]:])
	})
	return m
}

// SplitTwo partitions a by flags into a new slice: the false-flagged
// elements at [0, m) followed by the true-flagged elements at [m, n),
// each group in its original order. It returns the slice and m, the
// count of false-flagged elements.
func SplitTwo[T any](pool *workerpool.Pool, a []T, flags []bool, fl Flags) ([]T, int) {
	n := len(a)
	l := NumBlocks(n, BlockSize)
	sums := make([]int, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c := 0
		for j := s; j < e; j++ {
			if !flags[j] {
				c++
			}
		}
		sums[i] = c
	})
	m := ScanInplace(pool, sums, AddMonoid[int](), fl)
	out := NewUninitialized[T](n)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c0 := sums[i]
		c1 := s + (m - c0)
		for j := s; j < e; j++ {
			if !flags[j] {
				out.ConstructAt(c0, a[j])
				c0++
			} else {
				out.ConstructAt(c1, a[j])
				c1++
			}
		}
	})
	return out.Take(), m
}

// SplitThree scatters a into out in three stable groups selected by
// flags[j]: value 0 to [0, m0), value 1 to [m0, m0+m1), anything else to
// [m0+m1, n). It returns m0 and m1. out must be a range distinct from a;
// aliasing them is reported as ErrAliasedOutput.
func SplitThree[T any](pool *workerpool.Pool, a, out []T, flags []uint8, fl Flags) (m0, m1 int, err error) {
	return SplitThreeFunc(pool, a, out, func(i int) uint8 { return flags[i] }, fl)
}

// SplitThreeFunc is SplitThree with the category of index j computed on
// demand by flag(j) instead of read from a materialized array. flag is
// called at most twice per index (once to count, once to scatter) and
// must be pure.
func SplitThreeFunc[T any](pool *workerpool.Pool, a, out []T, flag func(int) uint8, fl Flags) (m0, m1 int, err error) {
	n := len(a)
	if n > 0 && len(a) == len(out) && unsafe.SliceData(a) == unsafe.SliceData(out) {
		return 0, 0, ErrAliasedOutput
	}
	l := NumBlocks(n, BlockSize)
	sums0 := make([]int, l)
	sums1 := make([]int, l)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c0, c1 := 0, 0
		for j := s; j < e; j++ {
			switch flag(j) {
			case 0:
				c0++
			case 1:
				c1++
			}
		}
		sums0[i] = c0
		sums1[i] = c1
	})
	m0 = ScanInplace(pool, sums0, AddMonoid[int](), fl)
	m1 = ScanInplace(pool, sums1, AddMonoid[int](), fl)
	slicedFor(pool, n, BlockSize, fl, func(i, s, e int) {
		c0 := sums0[i]
		c1 := m0 + sums1[i]
		c2 := m0 + m1 + (s - sums0[i] - sums1[i])
		for j := s; j < e; j++ {
			switch flag(j) {
			case 0:
				out[c0] = a[j]
				c0++
			case 1:
				out[c1] = a[j]
				c1++
			default:
				out[c2] = a[j]
				c2++
			}
		}
	})
	return m0, m1, nil
}
