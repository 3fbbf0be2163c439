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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-pufunc/engine"
)

func TestApply1Square(t *testing.T) {
	in := make([]float64, 10_000)
	for i := range in {
		in[i] = float64(i)
	}
	out := make([]float64, len(in))
	want := make([]float64, len(in))
	for i, v := range in {
		want[i] = v * v
	}

	_, err := Apply1(context.Background(), engine.DefaultConfig(), in, out, 4, func(x float64) float64 { return x * x })
	if err != nil {
		t.Fatalf("Apply1() error = %v", err)
	}
	if diff := cmp.Diff(want, out, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Apply1() mismatch (-want +got):\n%s", diff)
	}
}

func TestApply2Add(t *testing.T) {
	n := 4096
	a := make([]float32, n)
	b := make([]float32, n)
	want := make([]float32, n)
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(i) * 2
		want[i] = a[i] + b[i]
	}
	out := make([]float32, n)

	_, err := Apply2(context.Background(), engine.DefaultConfig(), a, b, out, 6, func(x, y float32) float32 { return x + y })
	if err != nil {
		t.Fatalf("Apply2() error = %v", err)
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Apply2() mismatch (-want +got):\n%s", diff)
	}
}

func TestApply3FusedMultiplyAdd(t *testing.T) {
	n := 777
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	for i := range a {
		a[i], b[i], c[i] = float64(i), float64(i+1), float64(i+2)
	}
	out := make([]float64, n)

	_, err := Apply3(context.Background(), engine.DefaultConfig(), a, b, c, out, 3, func(x, y, z float64) float64 {
		return math.FMA(x, y, z)
	})
	if err != nil {
		t.Fatalf("Apply3() error = %v", err)
	}
	for i := range out {
		want := math.FMA(a[i], b[i], c[i])
		if out[i] != want {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestApply1ZeroLength(t *testing.T) {
	var in, out []float64
	stats, err := Apply1(context.Background(), engine.DefaultConfig(), in, out, 4, func(x float64) float64 { return x })
	if err != nil {
		t.Fatalf("Apply1() error = %v", err)
	}
	if stats.NumThread != 0 {
		t.Errorf("NumThread = %d, want 0 for an empty batch", stats.NumThread)
	}
}

func TestApply2OutputTooShortErrors(t *testing.T) {
	a := []int32{1, 2, 3}
	b := []int32{4, 5, 6}
	out := make([]int32, 1)
	_, err := Apply2(context.Background(), engine.DefaultConfig(), a, b, out, 2, func(x, y int32) int32 { return x + y })
	if err == nil {
		t.Fatal("Apply2() error = nil, want an error for an undersized output view")
	}
}

func TestApply2StridedColumns(t *testing.T) {
	// Row-major 2-column matrices; operate on column 0 only.
	n := 500
	a := make([]int32, n*2)
	b := make([]int32, n*2)
	out := make([]int32, n*2)
	for i := 0; i < n; i++ {
		a[i*2] = int32(i)
		b[i*2] = int32(i * 3)
	}

	aView := Strided[int32]{Data: a, Stride: 2}
	bView := Strided[int32]{Data: b, Stride: 2}
	outView := Strided[int32]{Data: out, Stride: 2}

	_, err := Apply2Strided(context.Background(), engine.DefaultConfig(), aView, bView, outView, 4, func(x, y int32) int32 { return x + y })
	if err != nil {
		t.Fatalf("Apply2Strided() error = %v", err)
	}
	for i := 0; i < n; i++ {
		want := a[i*2] + b[i*2]
		if got := out[i*2]; got != want {
			t.Fatalf("out[%d] = %d, want %d", i*2, got, want)
		}
	}
}
