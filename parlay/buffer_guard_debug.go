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

//go:build parlaydebug

package parlay

import "sync/atomic"

// constructGuard tracks which buffer slots have been constructed.
// Disjoint slots may share a bitmap word, so updates are atomic.
type constructGuard struct {
	bits []uint64
}

func newConstructGuard(n int) constructGuard {
	return constructGuard{bits: make([]uint64, (n+63)/64)}
}

func (g constructGuard) construct(i int) {
	mask := uint64(1) << (uint(i) & 63)
	if atomic.OrUint64(&g.bits[i>>6], mask)&mask != 0 {
		panic("parlay: buffer slot constructed twice")
	}
}
