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

import "github.com/ajroetker/go-pufunc/internal/thread"

// DefaultGranularity is the number of elements claimed per lock
// acquisition, by an owner's local-drain or a peer's steal. It amortizes
// lock overhead and bounds per-thread imbalance to less than one
// granularity's worth of elements. 256 matches the value the batch engine
// this package is modeled on has used in production.
const DefaultGranularity = 256

// Config carries the tuning parameters and collaborators a Dispatch call
// needs. The zero value behaves like DefaultConfig: a non-positive
// Granularity means DefaultGranularity and a nil NewAdapter means a
// goroutine adapter.
type Config struct {
	// Granularity overrides DefaultGranularity when positive.
	Granularity int

	// DisableSteal skips the work-stealing phase entirely, leaving each
	// worker to process only its own initial partition. Exists mainly so
	// tests can exercise the local-drain path in isolation.
	DisableSteal bool

	// SkipCompletionAudit skips the post-join Σcompleted == N check.
	// The audit is cheap and is left enabled by default.
	SkipCompletionAudit bool

	// NewAdapter constructs the platform thread adapter for one batch.
	// It is a factory rather than a shared value because the errgroup
	// adapter carries per-batch join state. Defaults to a fresh
	// goroutine adapter per Dispatch call.
	NewAdapter func() thread.Adapter
}

// DefaultConfig returns the Config a plain call to RunParallel uses.
func DefaultConfig() Config {
	return Config{
		Granularity: DefaultGranularity,
		NewAdapter:  func() thread.Adapter { return thread.NewGoroutineAdapter() },
	}
}

func (c Config) granularity() int {
	if c.Granularity > 0 {
		return c.Granularity
	}
	return DefaultGranularity
}

func (c Config) newAdapter() thread.Adapter {
	if c.NewAdapter != nil {
		return c.NewAdapter()
	}
	return thread.NewGoroutineAdapter()
}
