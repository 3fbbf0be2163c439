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
	"sync/atomic"
)

// InvokeFunc claims no knowledge of element types or kernel arity: given
// a range [item, item+count) it is expected to load each argument,
// call the kernel, and store each result. The queue/worker/steal
// machinery below only ever calls through this, built by MakeInvoker1,
// MakeInvoker2, or MakeInvoker3 over a concrete kernel. A kernel wrapper
// that needs extra context beyond its typed arguments closes over it
// when it builds the InvokeFunc, the same way any Go closure captures
// its environment; Dispatch itself never needs to see that context.
type InvokeFunc func(item, count int)

// sharedContext is the immutable-after-setup descriptor of one batch,
// shared read-only by all of its workers after Dispatch constructs it.
// The only part of it workers mutate is queues[*], and only under each
// queue's own lock.
type sharedContext struct {
	queues      []workQueue
	numThread   int
	granularity int
	invoke      InvokeFunc
	stealCount  *atomic.Int64
}

// threadContext is the per-worker mutable descriptor. completed is
// written only by the owning goroutine; the dispatcher reads it only
// after every worker has been joined, and Join's happens-before edge is
// what makes that read safe without an atomic.
type threadContext struct {
	common    *sharedContext
	id        int
	completed int
}
