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

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// workQueue is a per-thread range [next, last) of unclaimed element
// indices, guarded by a single-word spin-lock. next and last are plain
// ints: every read or write of them happens while lock is held, and the
// CompareAndSwap pair around the critical section is what the Go memory
// model requires to make those plain accesses race-free and correctly
// published to other goroutines.
//
// Invariants (observable with lock held): 0 <= next <= last <= N; next is
// monotonically non-decreasing; last is monotonically non-increasing.
type workQueue struct {
	lock atomic.Int32
	next int
	last int

	// _ pads the struct to a full cache line so adjacent queues in the
	// workqueues slice never share a line: the owner's hot path touches
	// next, a stealer's touches last, and without padding those accesses
	// from different queues could false-share a line across threads.
	_ cpu.CacheLinePad
}

// Lock spins a compare-and-swap from 0 (unlocked) to 1 (locked) until it
// observes the prior value 0. Critical sections under this lock are a
// handful of integer operations, so spinning beats the cost of a
// blocking mutex's syscall path for the expected low contention.
func (q *workQueue) Lock() {
	spins := 0
	for !q.lock.CompareAndSwap(0, 1) {
		spins++
		if spins > 64 {
			runtime.Gosched()
			spins = 0
		}
	}
}

// Unlock performs the matching 1->0 compare-and-swap. Observing a prior
// value other than 1 means the lock was corrupted — a double-unlock or a
// logic bug elsewhere — and the program cannot safely continue.
func (q *workQueue) Unlock() {
	if !q.lock.CompareAndSwap(1, 0) {
		fatalf(LockCorrupted, "unlock observed a lock word that was not held")
	}
}

// len reports last-next without acquiring the lock; callers that need a
// consistent snapshot must hold the lock themselves. Used only by tests
// and diagnostics.
func (q *workQueue) len() int {
	return q.last - q.next
}
