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

// Package parlay provides block-decomposed data-parallel primitives over
// in-memory slices: reduction, work-efficient prefix sums, and stable
// compaction (pack, filter, two-way and three-way splits).
//
// It follows the ParlayLib C++ library's design philosophy: every
// primitive performs the same total work as its serial counterpart, splits
// its input into fixed-size blocks processed independently on a fork-join
// pool, and combines block-local results through a cheap sequential phase.
// Combinators are applied strictly left to right within a block and block
// seeds are injected before any element of the block, so results are
// identical to the serial algorithm even for non-commutative monoids.
//
// Basic usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	total := parlay.Reduce(pool, data, parlay.AddMonoid[int64](), parlay.Flags{})
//	sums, _ := parlay.Scan(pool, data, parlay.AddMonoid[int64](), parlay.Flags{})
//	evens := parlay.Filter(pool, data, func(x int64) bool { return x%2 == 0 }, parlay.Flags{})
//
// No primitive takes a lock: every parallel phase assigns each concurrent
// task a disjoint index range to write before the phase begins. The only
// shared mutable state lives inside the worker pool.
//
// Comparison sorting lives in the parlay/sort subpackage; the fork-join
// pool in parlay/workerpool.
package parlay
