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

	"github.com/ajroetker/vmath/hwy"
)

var (
	nan32  = float32(stdmath.NaN())
	inf32  = float32(stdmath.Inf(1))
	tiny32 = stdmath.Float32frombits(1) // smallest subnormal
)

func TestExpSpecialExcept(t *testing.T) {
	tests := []struct {
		name string
		x    hwy.Float32x4
		want [4]bool
	}{
		{"normal", hwy.Float32x4{1, -1, 10, -63.9}, [4]bool{}},
		{"tiny bound inclusive", hwy.Float32x4{0x1p-63, -0x1p-63, stdmath.Nextafter32(0x1p-63, 1), 0}, [4]bool{true, true, false, true}},
		{"big bound inclusive", hwy.Float32x4{0x1p6, -0x1p6, stdmath.Nextafter32(0x1p6, 0), -stdmath.Nextafter32(0x1p6, 0)}, [4]bool{true, true, false, false}},
		{"non-finite", hwy.Float32x4{nan32, inf32, -inf32, tiny32}, [4]bool{true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMask32(t, expSpecialExceptF32x4(tt.x), tt.want)
		})
	}
}

func TestExpSpecialFast(t *testing.T) {
	n := hwy.Float32x4{126, -126, 127, -127}
	assertMask32(t, expSpecialFastF32x4(n), [4]bool{false, false, true, true})

	// NaN quotients are not special: they propagate through the polynomial.
	n = hwy.Float32x4{nan32, inf32, -inf32, 0}
	assertMask32(t, expSpecialFastF32x4(n), [4]bool{false, true, true, false})
}

func TestTrigSpecial(t *testing.T) {
	x := hwy.Float32x4{0, 0x1p-61, stdmath.Nextafter32(0x1p-61, 0), 0x1p20}
	ia := x.Abs().AsUint32x4()
	assertMask32(t, trigSpecialExceptF32x4(ia), [4]bool{true, false, true, true})
	assertMask32(t, trigSpecialFastF32x4(ia), [4]bool{false, false, false, true})

	x = hwy.Float32x4{stdmath.Nextafter32(0x1p20, 0), nan32, -inf32, 1e30}
	ia = x.Abs().AsUint32x4()
	assertMask32(t, trigSpecialExceptF32x4(ia), [4]bool{false, true, true, true})
	assertMask32(t, trigSpecialFastF32x4(ia), [4]bool{false, true, true, true})
}

func TestAcoshSpecial(t *testing.T) {
	tests := []struct {
		name string
		x    hwy.Float64x2
		want [2]bool
	}{
		{"one and two", hwy.Float64x2{1, 2}, [2]bool{false, false}},
		{"below one", hwy.Float64x2{stdmath.Nextafter(1, 0), 0}, [2]bool{true, true}},
		{"negative", hwy.Float64x2{-1, -2}, [2]bool{true, true}},
		{"big bound", hwy.Float64x2{0x1p511, stdmath.Nextafter(0x1p511, 0)}, [2]bool{true, false}},
		{"non-finite", hwy.Float64x2{stdmath.NaN(), stdmath.Inf(1)}, [2]bool{true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMask64(t, acoshSpecialF64x2(tt.x), tt.want)
		})
	}
}

func TestLog1pSpecial(t *testing.T) {
	tests := []struct {
		name       string
		x          hwy.Float64x2
		fast, tiny [2]bool
	}{
		{"normal", hwy.Float64x2{0.5, -0.5}, [2]bool{}, [2]bool{}},
		{"minus one", hwy.Float64x2{-1, stdmath.Nextafter(-1, 0)}, [2]bool{true, false}, [2]bool{true, false}},
		{"below minus one", hwy.Float64x2{-2, stdmath.Inf(-1)}, [2]bool{true, true}, [2]bool{true, true}},
		{"non-finite", hwy.Float64x2{stdmath.NaN(), stdmath.Inf(1)}, [2]bool{true, true}, [2]bool{true, true}},
		{"tiny", hwy.Float64x2{0x1p-512, -0x1p-600}, [2]bool{}, [2]bool{true, true}},
		{"tiny bound", hwy.Float64x2{0x1p-511, 0}, [2]bool{false, false}, [2]bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMask64(t, log1pSpecialF64x2(tt.x, false), tt.fast)
			assertMask64(t, log1pSpecialF64x2(tt.x, true), tt.tiny)
		})
	}
}

// TestMaskLanesAreFull checks that classifiers only ever produce all-ones or
// all-zeros lanes, over a spread of bit patterns.
func TestMaskLanesAreFull(t *testing.T) {
	for b := uint64(0); b <= 0xffffffff; b += 0x00fedcb7 {
		bits := uint32(b)
		x := hwy.Float32x4{
			stdmath.Float32frombits(bits),
			stdmath.Float32frombits(bits ^ 0x80000000),
			stdmath.Float32frombits(bits >> 1),
			stdmath.Float32frombits(bits | 0x7f800000),
		}
		ia := x.Abs().AsUint32x4()
		for _, m := range []hwy.Uint32x4{
			expSpecialExceptF32x4(x),
			trigSpecialExceptF32x4(ia),
			trigSpecialFastF32x4(ia),
		} {
			for i, v := range m {
				if v != 0 && v != ^uint32(0) {
					t.Fatalf("bits %#x lane %d: partial mask %#x", bits, i, v)
				}
			}
		}
	}
}
