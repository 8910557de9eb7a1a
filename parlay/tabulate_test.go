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
	"slices"
	"testing"

	"github.com/ajroetker/go-parlay/parlay/workerpool"
)

func TestTabulate(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	got := Tabulate(pool, 100000, func(i int) int64 {
		return (50021*int64(i) + 61) % (1 << 20)
	}, Flags{})
	if !slices.Equal(got, testInput(100000)) {
		t.Fatalf("Tabulate diverges from the serial construction")
	}
}

func TestMap(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	a := testInput(100000)
	got := Map(pool, a, func(x int64) int64 { return 3*x - 1 }, Flags{})
	for i := range a {
		if got[i] != 3*a[i]-1 {
			t.Fatalf("Map[%d] = %d, want %d", i, got[i], 3*a[i]-1)
		}
	}
}

func TestCopy(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := testInput(100000)
	dst := make([]int64, len(src))
	Copy(pool, dst, src, Flags{})
	if !slices.Equal(dst, src) {
		t.Fatalf("Copy lost elements")
	}
}
