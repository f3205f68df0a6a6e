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
	stdmath "math"
	"math/big"
	"testing"

	"github.com/ajroetker/vmath/hwy"
	"github.com/ajroetker/vmath/internal/ulp"
)

var allModes = []Mode{ModeFast, ModeExceptionFaithful}

// linSweep32 returns n evenly spaced values in [lo, hi].
func linSweep32(lo, hi float32, n int) []float32 {
	xs := make([]float32, n)
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range xs {
		xs[i] = float32(float64(lo) + float64(i)*step)
	}
	return xs
}

// bitSweep32 returns n values in [lo, hi] (0 < lo < hi) evenly spaced in bit
// pattern, which is roughly logarithmic spacing.
func bitSweep32(lo, hi float32, n int) []float32 {
	a, b := stdmath.Float32bits(lo), stdmath.Float32bits(hi)
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = stdmath.Float32frombits(a + uint32(uint64(b-a)*uint64(i)/uint64(n-1)))
	}
	return xs
}

// bitSweep64 is the binary64 counterpart of bitSweep32.
func bitSweep64(lo, hi float64, n int) []float64 {
	a, b := stdmath.Float64bits(lo), stdmath.Float64bits(hi)
	xs := make([]float64, n)
	step := (b - a) / uint64(n-1)
	for i := range xs {
		xs[i] = stdmath.Float64frombits(a + step*uint64(i))
	}
	xs[n-1] = hi
	return xs
}

func negate32(xs []float32) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = -x
	}
	return out
}

func negate64(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = -x
	}
	return out
}

// maxUlpF32x4 evaluates fn over xs four lanes at a time and returns the
// largest error against ref and the input that produced it.
func maxUlpF32x4(fn func(hwy.Float32x4) hwy.Float32x4, ref func(float64) float64, xs []float32) (worst float64, at float32) {
	for i := 0; i < len(xs); i += 4 {
		end := min(i+4, len(xs))
		x := hwy.LoadFloat32x4Padded(xs[i:end], xs[i])
		y := fn(x)
		for j := range end - i {
			if e := ulp.Ulp32(y[j], ref(float64(x[j]))); e > worst || stdmath.IsNaN(e) {
				worst, at = e, x[j]
			}
		}
	}
	return worst, at
}

// maxUlpF64x2 is the binary64 counterpart of maxUlpF32x4.
func maxUlpF64x2(fn func(hwy.Float64x2) hwy.Float64x2, ref func(float64) *big.Float, xs []float64) (worst, at float64) {
	for i := 0; i < len(xs); i += 2 {
		end := min(i+2, len(xs))
		x := hwy.LoadFloat64x2Padded(xs[i:end], xs[i])
		y := fn(x)
		for j := range end - i {
			if e := ulp.Ulp64(y[j], ref(x[j])); e > worst || stdmath.IsNaN(e) {
				worst, at = e, x[j]
			}
		}
	}
	return worst, at
}

// laneBits32 returns the raw bit patterns of v for exact comparisons.
func laneBits32(v hwy.Float32x4) [4]uint32 {
	return v.AsUint32x4()
}

func laneBits64(v hwy.Float64x2) [2]uint64 {
	return v.AsUint64x2()
}

// scalarF32x4 applies f to every lane.
func scalarF32x4(f func(float32) float32, x hwy.Float32x4) hwy.Float32x4 {
	for i := range x {
		x[i] = f(x[i])
	}
	return x
}

func scalarF64x2(f func(float64) float64, x hwy.Float64x2) hwy.Float64x2 {
	for i := range x {
		x[i] = f(x[i])
	}
	return x
}

// assertMask32 checks that every lane of m is all-ones or zero and matches want.
func assertMask32(t *testing.T, m hwy.Uint32x4, want [4]bool) {
	t.Helper()
	for i, v := range m {
		if v != 0 && v != ^uint32(0) {
			t.Errorf("lane %d: partial mask %#x", i, v)
		}
		if (v != 0) != want[i] {
			t.Errorf("lane %d: special = %v, want %v", i, v != 0, want[i])
		}
	}
}

func assertMask64(t *testing.T, m hwy.Uint64x2, want [2]bool) {
	t.Helper()
	for i, v := range m {
		if v != 0 && v != ^uint64(0) {
			t.Errorf("lane %d: partial mask %#x", i, v)
		}
		if (v != 0) != want[i] {
			t.Errorf("lane %d: special = %v, want %v", i, v != 0, want[i])
		}
	}
}
