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

package math

import (
	"github.com/ajroetker/vmath/hwy"
	"github.com/ajroetker/vmath/hwy/contrib/workerpool"
)

// parallelBatchF64 is the chunk size handed out by work stealing for the
// binary64 functions, whose special lanes go through the slower scalar
// routine and make the cost per element uneven.
const parallelBatchF64 = 2048

// ---------------------------------------------------------------------------
// Parallel bulk variants
// ---------------------------------------------------------------------------

// ParallelExpPoly computes ExpPoly over in using the pool. The result is
// bit-identical to ExpPoly.
func ParallelExpPoly(pool *workerpool.Pool, in, out []float32) {
	activeFuncs().ParallelExpPoly(pool, in, out)
}

// ParallelSinPoly computes SinPoly over in using the pool.
func ParallelSinPoly(pool *workerpool.Pool, in, out []float32) {
	activeFuncs().ParallelSinPoly(pool, in, out)
}

// ParallelCosPoly computes CosPoly over in using the pool.
func ParallelCosPoly(pool *workerpool.Pool, in, out []float32) {
	activeFuncs().ParallelCosPoly(pool, in, out)
}

// ParallelAcoshPoly computes AcoshPoly over in using the pool.
func ParallelAcoshPoly(pool *workerpool.Pool, in, out []float64) {
	activeFuncs().ParallelAcoshPoly(pool, in, out)
}

// ParallelLog1pPoly computes Log1pPoly over in using the pool.
func ParallelLog1pPoly(pool *workerpool.Pool, in, out []float64) {
	activeFuncs().ParallelLog1pPoly(pool, in, out)
}

func (f *Funcs) ParallelExpPoly(pool *workerpool.Pool, in, out []float32) {
	parallelFor(pool, in, out, lanesF32, f.ExpPoly)
}

func (f *Funcs) ParallelSinPoly(pool *workerpool.Pool, in, out []float32) {
	parallelFor(pool, in, out, lanesF32, f.SinPoly)
}

func (f *Funcs) ParallelCosPoly(pool *workerpool.Pool, in, out []float32) {
	parallelFor(pool, in, out, lanesF32, f.CosPoly)
}

func (f *Funcs) ParallelAcoshPoly(pool *workerpool.Pool, in, out []float64) {
	parallelBatched(pool, in, out, lanesF64, f.AcoshPoly)
}

func (f *Funcs) ParallelLog1pPoly(pool *workerpool.Pool, in, out []float64) {
	parallelBatched(pool, in, out, lanesF64, f.Log1pPoly)
}

// parallelFor splits [0, min(len(in), len(out))) into one lane-aligned chunk
// per worker. A nil pool runs bulk on the calling goroutine.
func parallelFor[T hwy.Floats](pool *workerpool.Pool, in, out []T, lanes int, bulk func(in, out []T)) {
	n := min(len(in), len(out))
	if pool == nil {
		bulk(in[:n], out[:n])
		return
	}
	pool.ParallelFor(n, lanes, func(start, end int) {
		bulk(in[start:end], out[start:end])
	})
}

// parallelBatched is parallelFor with work stealing over fixed batches.
func parallelBatched[T hwy.Floats](pool *workerpool.Pool, in, out []T, lanes int, bulk func(in, out []T)) {
	n := min(len(in), len(out))
	if pool == nil {
		bulk(in[:n], out[:n])
		return
	}
	pool.ParallelForBatched(n, parallelBatchF64, lanes, func(start, end int) {
		bulk(in[start:end], out[start:end])
	})
}
