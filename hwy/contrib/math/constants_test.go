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
)

// TestConstantBits pins every coefficient and threshold to the bit pattern
// it was derived with.
func TestConstantBits(t *testing.T) {
	f32 := []struct {
		name string
		v    float32
		bits uint32
	}{
		{"expPoly32[0]", expPoly32[0], 0x3c072010},
		{"expPoly32[1]", expPoly32[1], 0x3d2b9f17},
		{"expPoly32[2]", expPoly32[2], 0x3e2aaf33},
		{"expPoly32[3]", expPoly32[3], 0x3efffedb},
		{"expPoly32[4]", expPoly32[4], 0x3f7ffff6},
		{"shift32", shift32, 0x4b400000},
		{"expInvLn2_32", expInvLn2_32, 0x3fb8aa3b},
		{"expLn2Hi32", expLn2Hi32, 0x3f317200},
		{"expLn2Lo32", expLn2Lo32, 0x35bfbe8e},
		{"sinPoly32[0]", sinPoly32[0], 0xbe2aaaa4},
		{"sinPoly32[1]", sinPoly32[1], 0x3c0886fa},
		{"sinPoly32[2]", sinPoly32[2], 0xb94fa175},
		{"sinPoly32[3]", sinPoly32[3], 0x362d973b},
		{"trigPi1_32", trigPi1_32, 0x40490fdb},
		{"trigPi2_32", trigPi2_32, 0xb3bbbd2e},
		{"trigPi3_32", trigPi3_32, 0xa7772ced},
		{"trigInvPi32", trigInvPi32, 0x3ea2f983},
		{"trigHalfPi32", trigHalfPi32, 0x3fc90fdb},
	}
	for _, tt := range f32 {
		if got := stdmath.Float32bits(tt.v); got != tt.bits {
			t.Errorf("%s bits = %#08x, want %#08x", tt.name, got, tt.bits)
		}
	}

	f64 := []struct {
		name string
		v    float64
		bits uint64
	}{
		{"log1pPoly64[0]", log1pPoly64[0], 0xbfdffffffffffffb},
		{"log1pPoly64[1]", log1pPoly64[1], 0x3fd55555555551a9},
		{"log1pPoly64[18]", log1pPoly64[18], 0xbf9cfa7385bdb37e},
		{"log1pLn2Hi64", log1pLn2Hi64, 0x3fe62e42fefa3800},
		{"log1pLn2Lo64", log1pLn2Lo64, 0x3d2ef35793c76730},
	}
	for _, tt := range f64 {
		if got := stdmath.Float64bits(tt.v); got != tt.bits {
			t.Errorf("%s bits = %#016x, want %#016x", tt.name, got, tt.bits)
		}
	}
}

func TestThresholdBits(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		v    float32
	}{
		{"expTinyBound32", expTinyBound32, 0x1p-63},
		{"expBigBound32", expBigBound32, 0x1p6},
		{"trigTinyBound32", trigTinyBound32, 0x1p-61},
		{"trigRangeVal32", trigRangeVal32, 0x1p20},
		{"oneBits32", oneBits32, 1},
		{"expSplitBits32", expSplitBits32, 0x1p127},
	}
	for _, tt := range tests {
		if got := stdmath.Float32frombits(tt.bits); got != tt.v {
			t.Errorf("%s = %g, want %g", tt.name, got, tt.v)
		}
	}

	if trigThresh32 != trigRangeVal32-trigTinyBound32 {
		t.Errorf("trigThresh32 = %#x, want RangeVal - TinyBound = %#x", trigThresh32, trigRangeVal32-trigTinyBound32)
	}
	if got := stdmath.Float64frombits(acoshBigBoundTop64 << mantBits64); got != 0x1p511 {
		t.Errorf("acosh big bound = %g, want 0x1p511", got)
	}
	if got := stdmath.Float64frombits(log1pTinyBits64); got != 0x1p-511 {
		t.Errorf("log1p tiny bound = %g, want 0x1p-511", got)
	}
	if got := stdmath.Float64frombits(log1pHfRt2Top); stdmath.Abs(got-stdmath.Sqrt2/2) > 1e-6 {
		t.Errorf("log1pHfRt2Top = %g, want ~sqrt(2)/2", got)
	}
	if log1pOneMHfRt2Top != 0x3ff0000000000000-log1pHfRt2Top {
		t.Errorf("log1pOneMHfRt2Top = %#x, want %#x", log1pOneMHfRt2Top, 0x3ff0000000000000-log1pHfRt2Top)
	}
}

// TestSplitConstantsSum checks that the split constants add up to the value
// they represent beyond binary32 precision.
func TestSplitConstantsSum(t *testing.T) {
	ln2 := float64(expLn2Hi32) + float64(expLn2Lo32)
	if d := stdmath.Abs(ln2 - stdmath.Ln2); d > 0x1p-43 {
		t.Errorf("Ln2Hi + Ln2Lo differs from ln2 by %g", d)
	}

	pi := float64(trigPi1_32) + float64(trigPi2_32) + float64(trigPi3_32)
	if d := stdmath.Abs(pi - stdmath.Pi); d > 0x1p-51 {
		t.Errorf("Pi1 + Pi2 + Pi3 differs from pi by %g", d)
	}

	ln2d := log1pLn2Hi64 + log1pLn2Lo64
	if ln2d != stdmath.Ln2 {
		t.Errorf("log1pLn2Hi64 + log1pLn2Lo64 = %v, want %v", ln2d, stdmath.Ln2)
	}
}
