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

// goroutineAdapter is the default Adapter: each Spawn starts a goroutine,
// the direct analogue of pthread_create/CreateThread for a Go runtime.
type goroutineAdapter struct{}

// NewGoroutineAdapter returns an Adapter backed by plain goroutines, each
// joined through its own completion channel.
func NewGoroutineAdapter() Adapter {
	return goroutineAdapter{}
}

type goroutineHandle struct {
	done chan struct{}
	err  error
}

func (goroutineAdapter) Spawn(fn func()) Handle {
	h := &goroutineHandle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.err = runCaptured(fn)
	}()
	return h
}

func (goroutineAdapter) Join(h Handle) error {
	gh := h.(*goroutineHandle)
	<-gh.done
	return gh.err
}
