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

func TestBufferConstructAt(t *testing.T) {
	b := NewUninitialized[int](100)
	if b.Len() != 100 {
		t.Fatalf("Len = %d, want 100", b.Len())
	}
	// Construct out of order, each slot exactly once.
	for i := 99; i >= 0; i-- {
		b.ConstructAt(i, i*i)
	}
	data := b.Take()
	for i, v := range data {
		if v != i*i {
			t.Fatalf("slot %d = %d, want %d", i, v, i*i)
		}
	}
}

func TestBufferConcurrentConstruct(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	n := 100000
	b := NewUninitialized[int](n)
	pool.For(n, 0, false, func(i int) {
		b.ConstructAt(i, i)
	})
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	if !slices.Equal(b.Take(), want) {
		t.Fatalf("concurrent construction lost writes")
	}
}
