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

// Float32x4 represents a 128-bit vector of 4 float32 lanes.
//
// It is a plain array so vectors are passed and returned by value and no
// operation allocates.
type Float32x4 [4]float32

// ===== Float32x4 constructors =====

// BroadcastFloat32x4 creates a vector with all lanes set to the given value.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// LoadFloat32x4 loads 4 float32 values from a slice.
// It panics if len(s) < 4.
func LoadFloat32x4(s []float32) Float32x4 {
	_ = s[3]
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// LoadFloat32x4Padded loads up to 4 values from s and fills the remaining
// lanes with pad. It is used for the tail of a slice.
func LoadFloat32x4Padded(s []float32, pad float32) Float32x4 {
	v := BroadcastFloat32x4(pad)
	copy(v[:], s)
	return v
}

// ZeroFloat32x4 returns a zero vector.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// ===== Float32x4 accessors =====

// Get returns the element at the given index.
func (v Float32x4) Get(i int) float32 {
	return v[i]
}

// StoreSlice stores the vector to a slice.
// It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v[0], v[1], v[2], v[3]
}

// StorePartial stores the first min(len(s), 4) lanes to s.
func (v Float32x4) StorePartial(s []float32) {
	copy(s, v[:])
}

// ===== Float32x4 arithmetic =====

// Add performs element-wise addition.
func (v Float32x4) Add(other Float32x4) Float32x4 {
	return Float32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(other Float32x4) Float32x4 {
	return Float32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(other Float32x4) Float32x4 {
	return Float32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// Div performs element-wise division.
func (v Float32x4) Div(other Float32x4) Float32x4 {
	return Float32x4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// MulAdd performs fused multiply-add: v * a + b, rounded once per lane.
func (v Float32x4) MulAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = FusedMulAdd32(v[i], a[i], b[i])
	}
	return r
}

// NegMulAdd performs fused negated multiply-add: b - v * a, rounded once per lane.
func (v Float32x4) NegMulAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = FusedMulAdd32(-v[i], a[i], b[i])
	}
	return r
}

// Abs clears the sign bit of every lane.
func (v Float32x4) Abs() Float32x4 {
	return v.AsUint32x4().And(BroadcastUint32x4(0x7fffffff)).AsFloat32x4()
}

// Neg flips the sign bit of every lane.
func (v Float32x4) Neg() Float32x4 {
	return v.AsUint32x4().Xor(BroadcastUint32x4(0x80000000)).AsFloat32x4()
}

// Round rounds each lane to the nearest integer, ties away from zero
// (vrndaq_f32).
func (v Float32x4) Round() Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = float32(math.Round(float64(v[i])))
	}
	return r
}

// ConvertToInt32Round converts each lane to int32 rounding to nearest with
// ties away from zero (vcvtaq_s32_f32). Out of range lanes saturate; NaN
// converts to 0.
func (v Float32x4) ConvertToInt32Round() Int32x4 {
	var r Int32x4
	for i := range r {
		f := math.Round(float64(v[i]))
		switch {
		case f != f:
			r[i] = 0
		case f >= math.MaxInt32:
			r[i] = math.MaxInt32
		case f <= math.MinInt32:
			r[i] = math.MinInt32
		default:
			r[i] = int32(f)
		}
	}
	return r
}

// ===== Float32x4 comparisons =====
//
// Comparisons return a Uint32x4 mask whose lanes are all-ones when the
// predicate holds and zero otherwise. Comparisons involving NaN are false.

// Greater returns a mask of lanes where v > other.
func (v Float32x4) Greater(other Float32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] > other[i])
	}
	return m
}

// GreaterEqual returns a mask of lanes where v >= other.
func (v Float32x4) GreaterEqual(other Float32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] >= other[i])
	}
	return m
}

// Less returns a mask of lanes where v < other.
func (v Float32x4) Less(other Float32x4) Uint32x4 {
	return other.Greater(v)
}

// LessEqual returns a mask of lanes where v <= other.
func (v Float32x4) LessEqual(other Float32x4) Uint32x4 {
	return other.GreaterEqual(v)
}

// Equal returns a mask of lanes where v == other.
func (v Float32x4) Equal(other Float32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] == other[i])
	}
	return m
}

// ===== Float32x4 reinterpretation =====

// AsUint32x4 reinterprets the bits of each lane as uint32. No value
// conversion takes place; NaN payloads and signed zeros are preserved.
func (v Float32x4) AsUint32x4() Uint32x4 {
	return Uint32x4{
		math.Float32bits(v[0]),
		math.Float32bits(v[1]),
		math.Float32bits(v[2]),
		math.Float32bits(v[3]),
	}
}

// Merge returns v in lanes where mask is set and other elsewhere.
// Selection is bitwise, so a mask must be all-ones or all-zeros per lane.
func (v Float32x4) Merge(other Float32x4, mask Uint32x4) Float32x4 {
	return mask.Select(v.AsUint32x4(), other.AsUint32x4()).AsFloat32x4()
}

// Data returns the lanes as a slice. It is meant for tests and debugging.
func (v Float32x4) Data() []float32 {
	return v[:]
}

func maskBit32(b bool) uint32 {
	if b {
		return 0xffffffff
	}
	return 0
}
