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

import "unsafe"

// Kernel1, Kernel2, and Kernel3 are the concrete kernel signatures this
// package knows how to drive: unary, binary, and ternary elementwise
// functions. Producing one of these from a user-level function — type
// checking, broadcasting, JIT compilation, and the like — is a front
// end's job; this package only ever calls an already-typed kernel.
type (
	Kernel1[A0, R any]     func(a0 A0) R
	Kernel2[A0, A1, R any] func(a0 A0, a1 A1) R
	Kernel3[A0, A1, A2, R any] func(a0 A0, a1 A1, a2 A2) R
)

// MakeInvoker1 builds an InvokeFunc for a unary kernel. args must have
// length 2 (one input, one output) and steps the matching byte strides;
// both are taken as already pointing at element 0 of their argument.
func MakeInvoker1[A0, R any](args []unsafe.Pointer, steps []uintptr, f Kernel1[A0, R]) InvokeFunc {
	a0Base, rBase := args[0], args[1]
	s0, sr := steps[0], steps[1]
	return func(item, count int) {
		p0 := unsafe.Add(a0Base, uintptr(item)*s0)
		pr := unsafe.Add(rBase, uintptr(item)*sr)
		for k := 0; k < count; k++ {
			v0 := *(*A0)(p0)
			*(*R)(pr) = f(v0)
			p0 = unsafe.Add(p0, s0)
			pr = unsafe.Add(pr, sr)
		}
	}
}

// MakeInvoker2 builds an InvokeFunc for a binary kernel. args must have
// length 3 (two inputs, one output).
func MakeInvoker2[A0, A1, R any](args []unsafe.Pointer, steps []uintptr, f Kernel2[A0, A1, R]) InvokeFunc {
	a0Base, a1Base, rBase := args[0], args[1], args[2]
	s0, s1, sr := steps[0], steps[1], steps[2]
	return func(item, count int) {
		p0 := unsafe.Add(a0Base, uintptr(item)*s0)
		p1 := unsafe.Add(a1Base, uintptr(item)*s1)
		pr := unsafe.Add(rBase, uintptr(item)*sr)
		for k := 0; k < count; k++ {
			v0 := *(*A0)(p0)
			v1 := *(*A1)(p1)
			*(*R)(pr) = f(v0, v1)
			p0 = unsafe.Add(p0, s0)
			p1 = unsafe.Add(p1, s1)
			pr = unsafe.Add(pr, sr)
		}
	}
}

// MakeInvoker3 builds an InvokeFunc for a ternary kernel. args must have
// length 4 (three inputs, one output).
func MakeInvoker3[A0, A1, A2, R any](args []unsafe.Pointer, steps []uintptr, f Kernel3[A0, A1, A2, R]) InvokeFunc {
	a0Base, a1Base, a2Base, rBase := args[0], args[1], args[2], args[3]
	s0, s1, s2, sr := steps[0], steps[1], steps[2], steps[3]
	return func(item, count int) {
		p0 := unsafe.Add(a0Base, uintptr(item)*s0)
		p1 := unsafe.Add(a1Base, uintptr(item)*s1)
		p2 := unsafe.Add(a2Base, uintptr(item)*s2)
		pr := unsafe.Add(rBase, uintptr(item)*sr)
		for k := 0; k < count; k++ {
			v0 := *(*A0)(p0)
			v1 := *(*A1)(p1)
			v2 := *(*A2)(p2)
			*(*R)(pr) = f(v0, v1, v2)
			p0 = unsafe.Add(p0, s0)
			p1 = unsafe.Add(p1, s1)
			p2 = unsafe.Add(p2, s2)
			pr = unsafe.Add(pr, sr)
		}
	}
}
