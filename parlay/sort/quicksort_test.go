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
	"math/rand"
	"slices"
	"testing"
)

func intLess(a, b int) bool { return a < b }

// isSorted checks ordering under a comparator.
func isSorted[T any](data []T, less func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// checkPermutation verifies the result holds exactly the input's elements.
func checkPermutation(t *testing.T, got, orig []int) {
	t.Helper()
	a := slices.Clone(got)
	b := slices.Clone(orig)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Fatalf("result is not a permutation of the input")
	}
}

func randomInts(n, bound int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(bound)
	}
	return data
}

func TestQuicksortEmpty(t *testing.T) {
	var empty []int
	Quicksort(empty, intLess)
	if len(empty) != 0 {
		t.Errorf("Quicksort(empty) should not modify empty slice")
	}
}

func TestQuicksortSingle(t *testing.T) {
	data := []int{42}
	Quicksort(data, intLess)
	if data[0] != 42 {
		t.Errorf("Quicksort([42]) = %v, want [42]", data)
	}
}

func TestQuicksortFive(t *testing.T) {
	// n == 5 exactly: the minimum-size dual-pivot partition path.
	data := []int{0, 1, 2, 3, 4}
	Quicksort(data, intLess)
	if !slices.Equal(data, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Quicksort([0..4]) = %v", data)
	}

	data = []int{4, 2, 0, 3, 1}
	Quicksort(data, intLess)
	if !slices.Equal(data, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Quicksort(shuffled [0..4]) = %v", data)
	}
}

func TestQuicksortRandom(t *testing.T) {
	for _, n := range []int{10, 16, 24, 100, 1000, 50000} {
		data := randomInts(n, 1<<20, int64(n))
		orig := slices.Clone(data)
		Quicksort(data, intLess)
		if !isSorted(data, intLess) {
			t.Fatalf("n=%d: Quicksort produced unsorted result", n)
		}
		checkPermutation(t, data, orig)
	}
}

func TestQuicksortAdversarial(t *testing.T) {
	n := 10000
	sorted := make([]int, n)
	reversed := make([]int, n)
	constant := make([]int, n)
	fewKeys := make([]int, n)
	for i := range sorted {
		sorted[i] = i
		reversed[i] = n - i
		constant[i] = 7
		fewKeys[i] = i % 3
	}
	for name, data := range map[string][]int{
		"sorted": sorted, "reversed": reversed,
		"constant": constant, "fewKeys": fewKeys,
	} {
		orig := slices.Clone(data)
		Quicksort(data, intLess)
		if !isSorted(data, intLess) {
			t.Fatalf("%s: Quicksort produced unsorted result", name)
		}
		checkPermutation(t, data, orig)
	}
}

func TestQuicksortIdempotent(t *testing.T) {
	data := randomInts(10000, 100, 1)
	Quicksort(data, intLess)
	once := slices.Clone(data)
	Quicksort(data, intLess)
	if !slices.Equal(data, once) {
		t.Fatalf("sorting a sorted slice changed it")
	}
}

func TestQuicksortCustomOrder(t *testing.T) {
	data := randomInts(5000, 1<<20, 2)
	Quicksort(data, func(a, b int) bool { return a > b })
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("descending sort is ascending at %d", i)
		}
	}
}

type pair struct {
	key int
	pad [3]int64 // push the element past pointer size, base case 16
}

func TestQuicksortWideElements(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]pair, 5000)
	for i := range data {
		data[i] = pair{key: rng.Intn(1000)}
	}
	less := func(a, b pair) bool { return a.key < b.key }
	Quicksort(data, less)
	if !isSorted(data, less) {
		t.Fatalf("Quicksort on wide elements produced unsorted result")
	}
}

func TestSort5PlacesSample(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	sort5(data, intLess)
	if !isSorted(data[:5], intLess) {
		t.Fatalf("sort5 front = %v, want sorted", data[:5])
	}
}

func TestSplit3Invariant(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		data := randomInts(500, 50, seed)
		l, m, midEq := split3(data, intLess)
		p1 := data[l]
		var p2 int
		if l+1 < m {
			p2 = data[m-1]
		} else {
			p2 = p1
		}
		for i := 0; i < l; i++ {
			if !intLess(data[i], p1) {
				t.Fatalf("seed %d: data[%d]=%d not < p1=%d", seed, i, data[i], p1)
			}
		}
		for i := l; i < m; i++ {
			if intLess(data[i], p1) || intLess(p2, data[i]) {
				t.Fatalf("seed %d: data[%d]=%d outside [p1, p2]", seed, i, data[i])
			}
		}
		for i := m; i < len(data); i++ {
			if !intLess(p2, data[i]) {
				t.Fatalf("seed %d: data[%d]=%d not > p2", seed, i, data[i])
			}
		}
		if midEq && p1 != p2 {
			t.Fatalf("seed %d: midEq with distinct pivots", seed)
		}
	}
}

func TestSplit3Five(t *testing.T) {
	// Exactly the minimum partition size.
	data := []int{4, 0, 3, 1, 2}
	l, m, _ := split3(data, intLess)
	p1 := data[l]
	for i := 0; i < l; i++ {
		if !intLess(data[i], p1) {
			t.Fatalf("data[%d]=%d not < pivot %d", i, data[i], p1)
		}
	}
	for i := m; i < len(data); i++ {
		if intLess(data[i], p1) {
			t.Fatalf("data[%d]=%d not >= pivot %d", i, data[i], p1)
		}
	}
}

func TestSplit3TooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("split3 on 4 elements did not panic")
		}
	}()
	split3([]int{3, 1, 2, 0}, intLess)
}
