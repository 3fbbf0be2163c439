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

// Command pufuncbench drives the parallel engine over a synthetic batch
// and reports per-thread completion balance and steal counts.
//
// Usage:
//
//	pufuncbench -n 1000000 -threads 8 -granularity 256
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ajroetker/go-pufunc/engine"
	"github.com/ajroetker/go-pufunc/ufunc"
)

var (
	n            = flag.Int("n", 1_000_000, "batch size")
	threads      = flag.Int("threads", runtime.NumCPU(), "worker thread count")
	granularity  = flag.Int("granularity", engine.DefaultGranularity, "elements claimed per lock acquisition")
	disableSteal = flag.Bool("disable-steal", false, "skip the work-stealing phase")
)

func main() {
	flag.Parse()

	if *n < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be >= 0")
		os.Exit(1)
	}
	if *threads < 1 {
		fmt.Fprintln(os.Stderr, "Error: -threads must be >= 1")
		os.Exit(1)
	}

	in := make([]float64, *n)
	out := make([]float64, *n)
	for i := range in {
		in[i] = float64(i)
	}

	cfg := engine.DefaultConfig()
	cfg.Granularity = *granularity
	cfg.DisableSteal = *disableSteal

	start := time.Now()
	stats, err := ufunc.Apply1(context.Background(), cfg, in, out, *threads, func(x float64) float64 {
		return x*x + 1
	})
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("n=%d threads=%d(actual %d) granularity=%d steal=%v\n", *n, *threads, stats.NumThread, *granularity, !*disableSteal)
	fmt.Printf("elapsed: %s\n", elapsed)
	fmt.Printf("steals: %d\n", stats.Steals)
	fmt.Println("completed per thread:")
	for i, c := range stats.Completed {
		fmt.Printf("  thread %2d: %d\n", i, c)
	}
}
