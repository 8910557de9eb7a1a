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

const logBlockSize = 10

// BlockSize is the default number of elements handled by one block task.
// It bounds per-task overhead while keeping enough blocks in flight to
// occupy every worker.
const BlockSize = 1 << logBlockSize

// NumBlocks returns how many blocks of the given size cover n elements:
// zero when n is zero, otherwise ceil(n / blockSize).
func NumBlocks(n, blockSize int) int {
	if n == 0 {
		return 0
	}
	return 1 + (n-1)/blockSize
}

// slicedFor invokes f(i, s, e) for each block i covering [s, e) of [0, n),
// one task per block. The Sequential flag, a nil pool, and a single block
// all degrade to an in-place loop.
func slicedFor(pool *workerpool.Pool, n, blockSize int, fl Flags, f func(i, s, e int)) {
	l := NumBlocks(n, blockSize)
	body := func(i int) {
		s := i * blockSize
		e := min(s+blockSize, n)
		f(i, s, e)
	}
	if fl.Sequential || l <= 1 {
		for i := 0; i < l; i++ {
			body(i)
		}
		return
	}
	pool.For(l, 1, fl.Conservative, body)
}
