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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/vmath/hwy"
)

// expMaxULP is the documented bound (1.45 + 0.5) rounded up.
const expMaxULP = 2.0

func TestExpULP(t *testing.T) {
	intervals := []struct {
		name string
		xs   []float32
	}{
		{"linear", linSweep32(-87.3, 88.7, 200001)},
		{"small positive", bitSweep32(0x1p-70, 1, 20001)},
		{"small negative", negate32(bitSweep32(0x1p-70, 1, 20001))},
		{"subnormal results", linSweep32(-103.9, -87.4, 20001)},
	}
	for _, mode := range allModes {
		fn := FuncsFor(mode).ExpF32x4
		for _, iv := range intervals {
			t.Run(mode.String()+"/"+iv.name, func(t *testing.T) {
				worst, at := maxUlpF32x4(fn, stdmath.Exp, iv.xs)
				assert.LessOrEqual(t, worst, expMaxULP, "max error %.3f ULP at x=%g (%#08x)", worst, at, stdmath.Float32bits(at))
			})
		}
	}
}

func TestExpRintULP(t *testing.T) {
	worst, at := maxUlpF32x4(expRintF32x4, stdmath.Exp, linSweep32(-103, 88.7, 100001))
	assert.LessOrEqual(t, worst, expMaxULP, "max error %.3f ULP at x=%g", worst, at)
}

func TestExpSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		x    hwy.Float32x4
		want hwy.Float32x4
	}{
		{"zeros and tiny", hwy.Float32x4{0, float32(stdmath.Copysign(0, -1)), 0x1p-63, -0x1p-63}, hwy.Float32x4{1, 1, 1, 1}},
		{"non-finite", hwy.Float32x4{inf32, -inf32, nan32, 0}, hwy.Float32x4{inf32, 0, nan32, 1}},
		{"overflow", hwy.Float32x4{88.8, 100, 1e30, 89}, hwy.Float32x4{inf32, inf32, inf32, inf32}},
		{"underflow", hwy.Float32x4{-104, -200, -1e30, -150}, hwy.Float32x4{0, 0, 0, 0}},
	}
	for _, mode := range allModes {
		fn := FuncsFor(mode).ExpF32x4
		for _, tt := range tests {
			t.Run(mode.String()+"/"+tt.name, func(t *testing.T) {
				got := fn(tt.x)
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("exp(%v) mismatch (-want +got):\n%s", tt.x, diff)
				}
			})
		}
	}
}

// TestExpTinyRoutedExcept checks that exp(0x1p-63) goes through the scalar
// routine in exception-faithful mode and still returns 1.
func TestExpTinyRoutedExcept(t *testing.T) {
	x := hwy.BroadcastFloat32x4(0x1p-63)
	assertMask32(t, expSpecialExceptF32x4(x), [4]bool{true, true, true, true})

	got := FuncsFor(ModeExceptionFaithful).ExpF32x4(x)
	assert.Equal(t, laneBits32(hwy.BroadcastFloat32x4(1)), laneBits32(got))

	got = FuncsFor(ModeFast).ExpF32x4(x)
	assert.Equal(t, laneBits32(hwy.BroadcastFloat32x4(1)), laneBits32(got))
}

// TestExpExceptAllSpecial checks that a vector whose lanes are all special
// equals the scalar routine lane by lane, bit for bit.
func TestExpExceptAllSpecial(t *testing.T) {
	fn := FuncsFor(ModeExceptionFaithful).ExpF32x4
	vectors := []hwy.Float32x4{
		{nan32, inf32, -inf32, 0},
		{64, -64, 87.5, -100},
		{0x1p-63, -0x1p-70, tiny32, -tiny32},
		{1e30, -1e30, 88.72, -103.97},
	}
	for _, x := range vectors {
		want := scalarF32x4(Expf, x)
		got := fn(x)
		if diff := cmp.Diff(laneBits32(want), laneBits32(got)); diff != "" {
			t.Errorf("exp(%v) bits mismatch (-scalar +vector):\n%s", x, diff)
		}
	}
}

// TestExpFastAllSpecial covers the fast-mode split reconstruction, which
// must agree with the scalar routine on infinities, NaN and saturation.
func TestExpFastAllSpecial(t *testing.T) {
	fn := FuncsFor(ModeFast).ExpF32x4
	x := hwy.Float32x4{nan32, inf32, -inf32, 1e30}
	want := scalarF32x4(Expf, x)
	if diff := cmp.Diff(want, fn(x), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("exp mismatch (-scalar +vector):\n%s", diff)
	}
}

// TestExpLanesIndependent checks that a special lane does not disturb its
// neighbours.
func TestExpLanesIndependent(t *testing.T) {
	for _, mode := range allModes {
		fn := FuncsFor(mode).ExpF32x4
		normal := hwy.Float32x4{0.5, -2.25, 10, 3}
		base := fn(normal)
		for i := range 4 {
			x := normal
			x[i] = nan32
			got := fn(x)
			for j := range 4 {
				if j == i {
					assert.True(t, stdmath.IsNaN(float64(got[j])), "%s: lane %d should be NaN", mode, j)
					continue
				}
				assert.Equal(t, stdmath.Float32bits(base[j]), stdmath.Float32bits(got[j]), "%s: lane %d changed", mode, j)
			}
		}
	}
}

func TestExpSplitReconstruction(t *testing.T) {
	// Lanes with 126 < |n| <= 192 use 2^n = s1*s2 and must stay accurate,
	// including results deep in the subnormal range.
	xs := append(linSweep32(87.4, 88.72, 1001), linSweep32(-103.97, -87.4, 4001)...)
	worst, at := maxUlpF32x4(expFastF32x4, stdmath.Exp, xs)
	assert.LessOrEqual(t, worst, expMaxULP, "max error %.3f ULP at x=%g", worst, at)
}
