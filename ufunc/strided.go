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
	"fmt"
	"unsafe"
)

// Strided is a view over every Nth element of a backing slice: Data
// holds the full backing storage, Stride is the number of elements
// between logical elements (1 means contiguous). It lets callers model
// column slices, interleaved channels, or any other non-contiguous
// layout without copying.
type Strided[T any] struct {
	Data   []T
	Stride int
}

// Contiguous wraps a plain slice as a Strided view with Stride 1.
func Contiguous[T any](data []T) Strided[T] {
	return Strided[T]{Data: data, Stride: 1}
}

// Len reports how many logical elements the view covers.
func (s Strided[T]) Len() int {
	if s.Stride <= 0 || len(s.Data) == 0 {
		return 0
	}
	return (len(s.Data)-1)/s.Stride + 1
}

func (s Strided[T]) ptrAndStep() (unsafe.Pointer, uintptr, error) {
	if s.Stride <= 0 {
		return nil, 0, fmt.Errorf("ufunc: stride must be >= 1, got %d", s.Stride)
	}
	if len(s.Data) == 0 {
		return nil, 0, fmt.Errorf("ufunc: view has no backing data")
	}
	var zero T
	return unsafe.Pointer(&s.Data[0]), uintptr(s.Stride) * unsafe.Sizeof(zero), nil
}
