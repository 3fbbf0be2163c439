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
	"errors"
	"sync/atomic"

	"github.com/ajroetker/go-pufunc/internal/thread"
)

// Stats reports what a batch actually did, for the caller's own
// auditing or for tests asserting the properties below. It is not part
// of the minimal batch contract but costs nothing to expose.
type Stats struct {
	// Completed[i] is how many elements thread i processed, by local
	// drain and by stealing combined.
	Completed []int
	// Steals is the total number of successful granularity-sized steals
	// across every thread in the batch.
	Steals int
	// NumThread is the thread count actually used, after the degenerate
	// N < requested-thread-count collapse below.
	NumThread int
}

// Dispatch runs one batch: it partitions [0, n) into numThread initial
// work queues, spawns a worker per queue, joins them, and (unless
// disabled) audits that every element was processed exactly once.
//
// invoke is the opaque per-range callback a kernel wrapper (see the
// engine.MakeInvoker1/2/3 family, or the ufunc package) builds around its
// own typed arguments; Dispatch never interprets argument types itself,
// and never sees the arguments a wrapper's invoke closure captured.
func Dispatch(cfg Config, n int, numThread int, invoke InvokeFunc) (Stats, error) {
	if invoke == nil {
		return Stats{}, ErrNilInvoke
	}
	if n < 0 {
		return Stats{}, ErrNegativeN
	}
	if numThread < 1 {
		return Stats{}, ErrInvalidThreadCount
	}

	granularity := cfg.granularity()

	// Chunk, initial thread count. If n < numThread the integer division
	// floors to zero; fall back to one element per thread and shrink the
	// thread count to n so no thread is ever constructed only to find an
	// empty queue: the queue and context slices below are sized to this
	// collapsed count, not the caller's original request.
	chunk := n / numThread
	t := numThread
	if chunk == 0 {
		chunk = 1
		t = n
	}

	queues := make([]workQueue, t)
	contexts := make([]threadContext, t)
	var stealCount atomic.Int64

	shared := &sharedContext{
		queues:      queues,
		numThread:   t,
		granularity: granularity,
		invoke:      invoke,
		stealCount:  &stealCount,
	}

	for i := 0; i < t; i++ {
		queues[i].next = i * chunk
		queues[i].last = (i + 1) * chunk
	}
	if t > 0 {
		queues[t-1].last = n
	}
	for i := 0; i < t; i++ {
		contexts[i] = threadContext{common: shared, id: i}
	}

	adapter := cfg.newAdapter()
	handles := make([]thread.Handle, t)
	for i := 0; i < t; i++ {
		ctx := &contexts[i]
		handles[i] = adapter.Spawn(func() { runWorker(ctx, cfg.DisableSteal) })
	}
	for i := 0; i < t; i++ {
		if err := adapter.Join(handles[i]); err != nil {
			// A worker that panicked with its own *FatalError (a lock
			// corruption detected inside the worker, say) keeps that
			// Kind instead of being relabeled JoinFailed: the adapter
			// only ever wraps a worker panic, it doesn't invent one.
			var fe *FatalError
			if errors.As(err, &fe) {
				panic(fe)
			}
			fatalf(JoinFailed, "worker %d: %v", i, err)
		}
	}

	completed := make([]int, t)
	total := 0
	for i := 0; i < t; i++ {
		completed[i] = contexts[i].completed
		total += completed[i]
	}
	if !cfg.SkipCompletionAudit && total != n {
		fatalf(CompletionMismatch, "completed %d, want %d", total, n)
	}

	return Stats{
		Completed: completed,
		Steals:    int(stealCount.Load()),
		NumThread: t,
	}, nil
}
