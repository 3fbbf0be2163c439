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

// Package ufunc is the ergonomic layer over engine: it builds the
// args/steps arrays the core engine needs from ordinary Go slices (or,
// for non-contiguous data, from Strided views) and calls
// engine.RunParallel, the way go-highway's activation package wraps
// workerpool.Pool.ParallelForAtomicBatched with a concrete operation
// (ParallelGELU, ParallelReLU, ...).
package ufunc
