// Copyright 2025 go-highway Authors
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

package engine

import "testing"

// TestStealCheckRejectsSubGranularityResidual is the regression test for
// the full-chunk-or-nothing stealing rule: a steal requires a full
// granularity-sized chunk, so a queue with fewer than granularity
// elements remaining is never stolen from, even though it is non-empty.
func TestStealCheckRejectsSubGranularityResidual(t *testing.T) {
	peer := &workQueue{next: 0, last: 100} // fewer than granularity=256
	shared := &sharedContext{granularity: 256, invoke: func(int, int) {
		t.Fatal("invoke should not be called: nothing to steal")
	}}
	ctx := &threadContext{common: shared, id: 1}

	if stealCheck(ctx, peer) {
		t.Fatal("stealCheck() = true, want false for a sub-granularity residual")
	}
	if peer.next != 0 || peer.last != 100 {
		t.Errorf("peer range changed to [%d, %d), want unchanged [0, 100)", peer.next, peer.last)
	}
}

// TestStealCheckTakesFromTail asserts stealers shrink last, never touch
// next: the owner's hot path and a stealer's only ever collide at the
// lock, not on the same field.
func TestStealCheckTakesFromTail(t *testing.T) {
	peer := &workQueue{next: 0, last: 1000}
	var invoked []int
	shared := &sharedContext{granularity: 256, invoke: func(item, count int) {
		invoked = append(invoked, item, count)
	}}
	ctx := &threadContext{common: shared, id: 1}

	if !stealCheck(ctx, peer) {
		t.Fatal("stealCheck() = false, want true when a full chunk is available")
	}
	if peer.next != 0 {
		t.Errorf("peer.next = %d, want unchanged 0", peer.next)
	}
	if peer.last != 1000-256 {
		t.Errorf("peer.last = %d, want %d", peer.last, 1000-256)
	}
	if len(invoked) != 2 || invoked[0] != 744 || invoked[1] != 256 {
		t.Errorf("invoked = %v, want [744 256]", invoked)
	}
	if ctx.completed != 256 {
		t.Errorf("ctx.completed = %d, want 256", ctx.completed)
	}
}

// TestWorkQueueStateMachine walks a queue's three states — populated,
// steal-locked-out, and empty — and checks the transitions are monotone
// and the terminal state holds.
func TestWorkQueueStateMachine(t *testing.T) {
	q := &workQueue{next: 0, last: 300}
	granularity := 256

	// POPULATED: next < last, both drain and steal can succeed.
	if q.next >= q.last {
		t.Fatal("expected POPULATED state")
	}

	q.Lock()
	q.next += granularity // owner drains a full granularity
	q.Unlock()

	// STEAL-LOCKED-OUT: less than one granularity remains, but non-empty.
	if !(q.last-q.next < granularity && q.next < q.last) {
		t.Fatalf("expected STEAL-LOCKED-OUT, got next=%d last=%d", q.next, q.last)
	}
	shared := &sharedContext{granularity: granularity, invoke: func(int, int) {}}
	ctx := &threadContext{common: shared, id: 1}
	if stealCheck(ctx, q) {
		t.Fatal("steal succeeded on a sub-granularity residual")
	}

	q.Lock()
	q.next = q.last // owner finishes the residual itself
	q.Unlock()

	// EMPTY: terminal.
	if q.next != q.last {
		t.Fatalf("expected EMPTY state, got next=%d last=%d", q.next, q.last)
	}
	if stealCheck(ctx, q) {
		t.Fatal("steal succeeded on an EMPTY queue")
	}
}
