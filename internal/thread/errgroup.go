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

package thread

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// errgroupAdapter spawns through a golang.org/x/sync/errgroup.Group. All
// handles it returns are joined by the same underlying group, so the
// first Join call actually waits; later calls replay the cached result.
// One instance must not outlive a single batch.
type errgroupAdapter struct {
	eg       *errgroup.Group
	waitOnce sync.Once
	waitErr  error
}

// NewErrgroupAdapter returns a fresh Adapter backed by an errgroup.Group.
// Unlike the goroutine adapter it aggregates worker failures through the
// group's first-error-wins semantics rather than per-handle errors.
func NewErrgroupAdapter() Adapter {
	return &errgroupAdapter{eg: new(errgroup.Group)}
}

func (a *errgroupAdapter) Spawn(fn func()) Handle {
	a.eg.Go(func() error {
		return runCaptured(fn)
	})
	return nil
}

func (a *errgroupAdapter) Join(Handle) error {
	a.waitOnce.Do(func() {
		a.waitErr = a.eg.Wait()
	})
	return a.waitErr
}
