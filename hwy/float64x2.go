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

package hwy

import "math"

// Float64x2 represents a 128-bit vector of 2 float64 lanes.
type Float64x2 [2]float64

// ===== Float64x2 constructors =====

// BroadcastFloat64x2 creates a vector with all lanes set to the given value.
func BroadcastFloat64x2(v float64) Float64x2 {
	return Float64x2{v, v}
}

// LoadFloat64x2 loads 2 float64 values from a slice.
// It panics if len(s) < 2.
func LoadFloat64x2(s []float64) Float64x2 {
	_ = s[1]
	return Float64x2{s[0], s[1]}
}

// LoadFloat64x2Padded loads up to 2 values from s and fills the remaining
// lanes with pad.
func LoadFloat64x2Padded(s []float64, pad float64) Float64x2 {
	v := BroadcastFloat64x2(pad)
	copy(v[:], s)
	return v
}

// ZeroFloat64x2 returns a zero vector.
func ZeroFloat64x2() Float64x2 {
	return Float64x2{}
}

// ===== Float64x2 accessors =====

// Get returns the element at the given index.
func (v Float64x2) Get(i int) float64 {
	return v[i]
}

// StoreSlice stores the vector to a slice.
// It panics if len(s) < 2.
func (v Float64x2) StoreSlice(s []float64) {
	_ = s[1]
	s[0], s[1] = v[0], v[1]
}

// StorePartial stores the first min(len(s), 2) lanes to s.
func (v Float64x2) StorePartial(s []float64) {
	copy(s, v[:])
}

// ===== Float64x2 arithmetic =====

// Add performs element-wise addition.
func (v Float64x2) Add(other Float64x2) Float64x2 {
	return Float64x2{v[0] + other[0], v[1] + other[1]}
}

// Sub performs element-wise subtraction.
func (v Float64x2) Sub(other Float64x2) Float64x2 {
	return Float64x2{v[0] - other[0], v[1] - other[1]}
}

// Mul performs element-wise multiplication.
func (v Float64x2) Mul(other Float64x2) Float64x2 {
	return Float64x2{v[0] * other[0], v[1] * other[1]}
}

// Div performs element-wise division.
func (v Float64x2) Div(other Float64x2) Float64x2 {
	return Float64x2{v[0] / other[0], v[1] / other[1]}
}

// MulAdd performs fused multiply-add: v * a + b.
func (v Float64x2) MulAdd(a, b Float64x2) Float64x2 {
	return Float64x2{FusedMulAdd64(v[0], a[0], b[0]), FusedMulAdd64(v[1], a[1], b[1])}
}

// NegMulAdd performs fused negated multiply-add: b - v * a.
func (v Float64x2) NegMulAdd(a, b Float64x2) Float64x2 {
	return Float64x2{FusedMulAdd64(-v[0], a[0], b[0]), FusedMulAdd64(-v[1], a[1], b[1])}
}

// Abs clears the sign bit of every lane.
func (v Float64x2) Abs() Float64x2 {
	return v.AsUint64x2().And(BroadcastUint64x2(0x7fffffffffffffff)).AsFloat64x2()
}

// Neg flips the sign bit of every lane.
func (v Float64x2) Neg() Float64x2 {
	return v.AsUint64x2().Xor(BroadcastUint64x2(0x8000000000000000)).AsFloat64x2()
}

// Sqrt performs element-wise square root.
func (v Float64x2) Sqrt() Float64x2 {
	return Float64x2{math.Sqrt(v[0]), math.Sqrt(v[1])}
}

// ===== Float64x2 comparisons =====

// Equal returns a mask of lanes where v == other.
func (v Float64x2) Equal(other Float64x2) Uint64x2 {
	return Uint64x2{maskBit64(v[0] == other[0]), maskBit64(v[1] == other[1])}
}

// Greater returns a mask of lanes where v > other.
func (v Float64x2) Greater(other Float64x2) Uint64x2 {
	return Uint64x2{maskBit64(v[0] > other[0]), maskBit64(v[1] > other[1])}
}

// LessEqual returns a mask of lanes where v <= other.
func (v Float64x2) LessEqual(other Float64x2) Uint64x2 {
	return Uint64x2{maskBit64(v[0] <= other[0]), maskBit64(v[1] <= other[1])}
}

// ===== Float64x2 reinterpretation =====

// AsUint64x2 reinterprets the bits of each lane as uint64.
func (v Float64x2) AsUint64x2() Uint64x2 {
	return Uint64x2{math.Float64bits(v[0]), math.Float64bits(v[1])}
}

// Merge returns v in lanes where mask is set and other elsewhere.
func (v Float64x2) Merge(other Float64x2, mask Uint64x2) Float64x2 {
	return mask.Select(v.AsUint64x2(), other.AsUint64x2()).AsFloat64x2()
}

// Data returns the lanes as a slice. It is meant for tests and debugging.
func (v Float64x2) Data() []float64 {
	return v[:]
}

func maskBit64(b bool) uint64 {
	if b {
		return 0xffffffffffffffff
	}
	return 0
}
