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
	"fmt"
)

// Recoverable setup errors. These describe caller mistakes, not runtime
// corruption, so Dispatch and RunParallel return them as ordinary errors
// instead of panicking.
var (
	ErrNilInvoke          = errors.New("engine: invoke function is nil")
	ErrNegativeN          = errors.New("engine: n must be >= 0")
	ErrInvalidThreadCount = errors.New("engine: numThread must be >= 1")
)

// FatalKind enumerates the unrecoverable failure taxonomy: environmental
// impossibilities the engine cannot proceed past, as opposed to caller
// mistakes. None of these are expected to occur in correct operation.
type FatalKind int

const (
	// SpawnFailed means the platform adapter could not start a worker.
	SpawnFailed FatalKind = iota
	// JoinFailed means a worker could not be joined, or it reported an
	// error (including a captured panic) when joined.
	JoinFailed
	// LockCorrupted means Unlock observed a lock word that was not held,
	// indicating memory corruption or a logic bug in the lock protocol.
	LockCorrupted
	// CompletionMismatch means the post-join audit found that completed
	// counts across threads did not sum to N, indicating lost or
	// duplicated work.
	CompletionMismatch
)

func (k FatalKind) String() string {
	switch k {
	case SpawnFailed:
		return "spawn failed"
	case JoinFailed:
		return "join failed"
	case LockCorrupted:
		return "lock corrupted"
	case CompletionMismatch:
		return "completion mismatch"
	default:
		return "unknown"
	}
}

// FatalError is panicked for conditions that leave the batch unable to
// produce a correct result: the caller could not do anything useful with
// a returned error that panic/recover doesn't already offer. Callers
// that need process-level abort semantics can recover a *FatalError at
// their own boundary and exit.
type FatalError struct {
	Kind   FatalKind
	Detail string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("engine: fatal: %s: %s", e.Kind, e.Detail)
}

func fatalf(kind FatalKind, format string, args ...any) {
	panic(&FatalError{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
