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

// stealLoop repeatedly sweeps every peer queue until a full pass steals
// nothing. There is no barrier or condition variable; a full empty pass
// is the only progress signal, so a peer that is still deep in its own
// local-drain simply gets revisited on the next pass.
func stealLoop(ctx *threadContext) {
	common := ctx.common
	for {
		stoleAny := false
		for i := 0; i < common.numThread; i++ {
			if i == ctx.id {
				continue
			}
			if stealCheck(ctx, &common.queues[i]) {
				stoleAny = true
			}
		}
		if !stoleAny {
			return
		}
	}
}

// stealCheck takes one granularity-sized chunk off the tail of peer, if
// one is available. A steal requires a full chunk: sub-granularity
// residuals are deliberately left for the owner's local-drain, trading a
// little load-balance accuracy for avoiding contention near the end of a
// queue's range. This means a single queue with a long-running kernel
// and a sub-granularity tail cannot be accelerated below granularity by
// stealing.
func stealCheck(ctx *threadContext, peer *workQueue) bool {
	common := ctx.common
	granularity := common.granularity

	peer.Lock()
	if peer.next <= peer.last-granularity {
		peer.last -= granularity
		item := peer.last
		peer.Unlock()

		common.invoke(item, granularity)
		ctx.completed += granularity
		if common.stealCount != nil {
			common.stealCount.Add(1)
		}
		return true
	}
	peer.Unlock()
	return false
}
