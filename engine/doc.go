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

// Package engine is the parallel work-distribution core: per-thread work
// queues protected by a spin-lock, a work-stealing scheduler, and the
// strided inner loop that invokes a scalar kernel once per element.
//
// The engine itself never looks at element values or argument types; it
// claims and hands off (item, count) ranges to an opaque InvokeFunc. The
// typed, arity-specific loader/storer that actually calls a kernel lives
// in invoke.go and is built by MakeInvoker1/2/3; higher-level ergonomics
// (building args/steps from Go slices) live in the sibling ufunc package.
package engine
