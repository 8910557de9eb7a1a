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

package sort

import (
	"slices"

	"github.com/ajroetker/go-parlay/parlay"
	"github.com/ajroetker/go-parlay/parlay/workerpool"
)

// copyGrain is the parallel-iteration chunk size for the plain copies
// between the two partitioning buffers.
const copyGrain = 2000

// pSplit3 partitions a into b in parallel. Pivots come from sort5's
// sample; a pivot adjoining an equal neighbor in the sample is collapsed
// onto the other so a region expected to be nearly empty is not split
// off. The per-element category is computed on demand and scattered
// stably through the compaction engine.
func pSplit3[T any](pool *workerpool.Pool, a, b []T, less func(a, b T) bool) (l, m int, midEq bool) {
	sort5(a, less)
	p1, p2 := a[1], a[3]
	if !less(a[0], a[1]) {
		p1 = p2
	}
	if !less(a[3], a[4]) {
		p2 = p1
	}
	flag := func(i int) uint8 {
		switch {
		case less(a[i], p1):
			return 0
		case less(p2, a[i]):
			return 2
		default:
			return 1
		}
	}
	m0, m1, err := parlay.SplitThreeFunc(pool, a, b, flag, parlay.Flags{Conservative: true})
	if err != nil {
		// a and b are distinct by construction.
		panic(err)
	}
	return m0, m0 + m1, !less(p1, p2)
}

// pQuicksort ping-pongs between in and out: it partitions in into out and
// forks the three regions with the roles of the buffers swapped. With
// inplace set the final ordering ends up in in, and out is scratch;
// otherwise the result lands in out. Below cutSize it falls back to the
// fork-join sort of whichever buffer currently holds the data.
func pQuicksort[T any](pool *workerpool.Pool, in, out []T, less func(a, b T) bool, inplace bool, cutSize int) {
	n := len(in)
	if n < cutSize {
		ParallelQuicksort(pool, in, less)
		if !inplace {
			pool.For(n, copyGrain, false, func(i int) { out[i] = in[i] })
		}
		return
	}
	l, m, midEq := pSplit3(pool, in, out, less)
	pool.Do3(
		func() { pQuicksort(pool, out[:l], in[:l], less, !inplace, cutSize) },
		func() {
			if !midEq {
				pQuicksort(pool, out[l:m], in[l:m], less, !inplace, cutSize)
			} else if inplace {
				// The middle region is constant; it only needs to
				// land back in the in buffer.
				pool.For(m-l, copyGrain, false, func(i int) { in[l+i] = out[l+i] })
			}
		},
		func() { pQuicksort(pool, out[m:], in[m:], less, !inplace, cutSize) },
	)
}

// cutoff returns the size below which the fully parallel sort reverts to
// the fork-join sort: enough work per task to amortize the partitioning
// copies across the pool's workers.
func cutoff(pool *workerpool.Pool, n int) int {
	return max(3*n/pool.NumWorkers(), 1<<14)
}

// ParallelQuicksortInplace sorts a in place under less using the fully
// parallel algorithm: every phase, including partitioning, runs in
// parallel, at the cost of a scratch buffer of the same size.
func ParallelQuicksortInplace[T any](pool *workerpool.Pool, a []T, less func(a, b T) bool) {
	tmp := make([]T, len(a))
	pQuicksort(pool, a, tmp, less, true, cutoff(pool, len(a)))
}

// ParallelQuicksortCopy returns the elements of a sorted under less,
// leaving a untouched, using the fully parallel algorithm.
func ParallelQuicksortCopy[T any](pool *workerpool.Pool, a []T, less func(a, b T) bool) []T {
	in := slices.Clone(a)
	out := make([]T, len(a))
	pQuicksort(pool, in, out, less, false, cutoff(pool, len(a)))
	return out
}
