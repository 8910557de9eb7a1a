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

// Flags adjusts how a single primitive call executes. The zero value asks
// for parallel execution with default granularity. Flags is passed by
// value per call; it is never global state.
//
// Scan inclusivity is not a flag: it is encoded in the operation name
// (Scan vs ScanInclusive), so a pack call cannot carry a meaningless
// inclusive bit.
type Flags struct {
	// Sequential forces the serial algorithm, regardless of input size.
	Sequential bool

	// Conservative lowers the parallel-iteration chunk size so the call
	// interleaves well when issued from inside an already-parallel
	// context, avoiding oversubscription.
	Conservative bool
}
