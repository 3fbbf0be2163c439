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
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// batchAdmission bounds how many batches may be dispatching workers at
// once across independent, concurrently-issued calls to RunParallel. A
// caller that fans out many small batches from its own goroutines would
// otherwise oversubscribe the machine with num_thread goroutines per
// batch on top of num_thread more per other in-flight batch; this caps
// total concurrent batches the way a single semaphore sized to the CPU
// count bounds any one resource pool.
var batchAdmission = semaphore.NewWeighted(int64(max(1, runtime.NumCPU())))

// RunParallel is the batch entry point: acquire an admission slot, then
// Dispatch. Dispatch is the algorithm with the admission control
// stripped out, kept separate so tests can drive it directly without
// contending on the package-level semaphore.
func RunParallel(ctx context.Context, cfg Config, n int, numThread int, invoke InvokeFunc) (Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := batchAdmission.Acquire(ctx, 1); err != nil {
		return Stats{}, err
	}
	defer batchAdmission.Release(1)

	return Dispatch(cfg, n, numThread, invoke)
}
