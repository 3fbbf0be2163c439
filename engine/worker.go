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

// runWorker is the body every spawned worker goroutine executes: drain
// its own queue, then, unless disabled, try to steal from peers until a
// full pass finds nothing.
func runWorker(ctx *threadContext, disableSteal bool) {
	q := &ctx.common.queues[ctx.id]
	localDrain(ctx, q)
	if !disableSteal {
		stealLoop(ctx)
	}
}

// localDrain repeatedly claims up to granularity elements from the front
// of the owner's own queue and invokes the kernel over them, until the
// queue is exhausted.
//
// The exit check (item >= last) happens outside the lock, on a local
// snapshot of last taken while the lock was held. That's sound: if
// item >= last then amt was 0 this iteration and no work was claimed; if
// item < last then amt >= 1 and [item, item+amt) was claimed exclusively
// by this thread, since stealers can only ever shrink last, never below
// next.
func localDrain(ctx *threadContext, q *workQueue) {
	granularity := ctx.common.granularity
	for {
		q.Lock()
		item := q.next
		avail := q.last - q.next
		amt := min(granularity, avail)
		q.next += amt
		last := q.last
		q.Unlock()

		if item >= last {
			return
		}

		ctx.common.invoke(item, amt)
		ctx.completed += amt
	}
}
