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

package ufunc

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-pufunc/engine"
)

// Apply1 runs a unary kernel over contiguous in, writing into contiguous
// out, distributed across numThread workers.
func Apply1[A0, R any](ctx context.Context, cfg engine.Config, in []A0, out []R, numThread int, f engine.Kernel1[A0, R]) (engine.Stats, error) {
	return Apply1Strided(ctx, cfg, Contiguous(in), Contiguous(out), numThread, f)
}

// Apply1Strided is Apply1 for views that are not necessarily contiguous
// (stride wider than the element size, e.g. one column of a matrix).
func Apply1Strided[A0, R any](ctx context.Context, cfg engine.Config, in Strided[A0], out Strided[R], numThread int, f engine.Kernel1[A0, R]) (engine.Stats, error) {
	n := in.Len()
	if out.Len() < n {
		return engine.Stats{}, fmt.Errorf("ufunc: output view has %d elements, want at least %d", out.Len(), n)
	}
	if n == 0 {
		return engine.RunParallel(ctx, cfg, 0, numThread, noop)
	}
	a0Ptr, a0Step, err := in.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	rPtr, rStep, err := out.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	invoke := engine.MakeInvoker1(
		[]unsafe.Pointer{a0Ptr, rPtr},
		[]uintptr{a0Step, rStep},
		f,
	)
	return engine.RunParallel(ctx, cfg, n, numThread, invoke)
}

// Apply2 runs a binary kernel over two contiguous inputs of equal
// length, writing into contiguous out.
func Apply2[A0, A1, R any](ctx context.Context, cfg engine.Config, a0 []A0, a1 []A1, out []R, numThread int, f engine.Kernel2[A0, A1, R]) (engine.Stats, error) {
	return Apply2Strided(ctx, cfg, Contiguous(a0), Contiguous(a1), Contiguous(out), numThread, f)
}

// Apply2Strided is Apply2 for arbitrary-stride views.
func Apply2Strided[A0, A1, R any](ctx context.Context, cfg engine.Config, a0 Strided[A0], a1 Strided[A1], out Strided[R], numThread int, f engine.Kernel2[A0, A1, R]) (engine.Stats, error) {
	n := a0.Len()
	if a1.Len() < n {
		return engine.Stats{}, fmt.Errorf("ufunc: second input view has %d elements, want at least %d", a1.Len(), n)
	}
	if out.Len() < n {
		return engine.Stats{}, fmt.Errorf("ufunc: output view has %d elements, want at least %d", out.Len(), n)
	}
	if n == 0 {
		return engine.RunParallel(ctx, cfg, 0, numThread, noop)
	}
	a0Ptr, a0Step, err := a0.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	a1Ptr, a1Step, err := a1.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	rPtr, rStep, err := out.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	invoke := engine.MakeInvoker2(
		[]unsafe.Pointer{a0Ptr, a1Ptr, rPtr},
		[]uintptr{a0Step, a1Step, rStep},
		f,
	)
	return engine.RunParallel(ctx, cfg, n, numThread, invoke)
}

// Apply3 runs a ternary kernel over three contiguous inputs of equal
// length, writing into contiguous out.
func Apply3[A0, A1, A2, R any](ctx context.Context, cfg engine.Config, a0 []A0, a1 []A1, a2 []A2, out []R, numThread int, f engine.Kernel3[A0, A1, A2, R]) (engine.Stats, error) {
	return Apply3Strided(ctx, cfg, Contiguous(a0), Contiguous(a1), Contiguous(a2), Contiguous(out), numThread, f)
}

// Apply3Strided is Apply3 for arbitrary-stride views.
func Apply3Strided[A0, A1, A2, R any](ctx context.Context, cfg engine.Config, a0 Strided[A0], a1 Strided[A1], a2 Strided[A2], out Strided[R], numThread int, f engine.Kernel3[A0, A1, A2, R]) (engine.Stats, error) {
	n := a0.Len()
	if a1.Len() < n || a2.Len() < n {
		return engine.Stats{}, fmt.Errorf("ufunc: input views have mismatched lengths")
	}
	if out.Len() < n {
		return engine.Stats{}, fmt.Errorf("ufunc: output view has %d elements, want at least %d", out.Len(), n)
	}
	if n == 0 {
		return engine.RunParallel(ctx, cfg, 0, numThread, noop)
	}
	a0Ptr, a0Step, err := a0.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	a1Ptr, a1Step, err := a1.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	a2Ptr, a2Step, err := a2.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	rPtr, rStep, err := out.ptrAndStep()
	if err != nil {
		return engine.Stats{}, err
	}
	invoke := engine.MakeInvoker3(
		[]unsafe.Pointer{a0Ptr, a1Ptr, a2Ptr, rPtr},
		[]uintptr{a0Step, a1Step, a2Step, rStep},
		f,
	)
	return engine.RunParallel(ctx, cfg, n, numThread, invoke)
}

func noop(int, int) {}
