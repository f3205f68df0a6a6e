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

// Uint64x2 represents a 128-bit vector of 2 uint64 lanes.
// It doubles as the lane predicate mask for Float64x2.
type Uint64x2 [2]uint64

// BroadcastUint64x2 creates a vector with all lanes set to the given value.
func BroadcastUint64x2(v uint64) Uint64x2 {
	return Uint64x2{v, v}
}

// Add performs element-wise wrapping addition.
func (v Uint64x2) Add(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] + other[0], v[1] + other[1]}
}

// Sub performs element-wise wrapping subtraction.
func (v Uint64x2) Sub(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] - other[0], v[1] - other[1]}
}

// And performs bitwise AND.
func (v Uint64x2) And(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] & other[0], v[1] & other[1]}
}

// Or performs bitwise OR.
func (v Uint64x2) Or(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] | other[0], v[1] | other[1]}
}

// Xor performs bitwise XOR.
func (v Uint64x2) Xor(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] ^ other[0], v[1] ^ other[1]}
}

// AndNot returns v & ^other.
func (v Uint64x2) AndNot(other Uint64x2) Uint64x2 {
	return Uint64x2{v[0] &^ other[0], v[1] &^ other[1]}
}

// ShiftAllLeft shifts every lane left by count bits.
func (v Uint64x2) ShiftAllLeft(count uint) Uint64x2 {
	return Uint64x2{v[0] << count, v[1] << count}
}

// ShiftAllRight shifts every lane right by count bits (logical shift).
func (v Uint64x2) ShiftAllRight(count uint) Uint64x2 {
	return Uint64x2{v[0] >> count, v[1] >> count}
}

// GreaterEqual returns a mask of lanes where v >= other as unsigned integers.
func (v Uint64x2) GreaterEqual(other Uint64x2) Uint64x2 {
	return Uint64x2{maskBit64(v[0] >= other[0]), maskBit64(v[1] >= other[1])}
}

// Less returns a mask of lanes where v < other as unsigned integers.
func (v Uint64x2) Less(other Uint64x2) Uint64x2 {
	return Uint64x2{maskBit64(v[0] < other[0]), maskBit64(v[1] < other[1])}
}

// Select returns yes where the mask lane is set and no elsewhere.
// The receiver is the mask.
func (v Uint64x2) Select(yes, no Uint64x2) Uint64x2 {
	return yes.And(v).Or(no.AndNot(v))
}

// AsFloat64x2 reinterprets the bits of each lane as float64.
func (v Uint64x2) AsFloat64x2() Float64x2 {
	return Float64x2{math.Float64frombits(v[0]), math.Float64frombits(v[1])}
}

// AsInt64x2 reinterprets the bits of each lane as int64.
func (v Uint64x2) AsInt64x2() Int64x2 {
	return Int64x2{int64(v[0]), int64(v[1])}
}

// AnyTrue returns true if at least one lane is non-zero.
func (v Uint64x2) AnyTrue() bool {
	return v[0]|v[1] != 0
}

// AllTrue returns true if every lane is non-zero.
func (v Uint64x2) AllTrue() bool {
	return v[0] != 0 && v[1] != 0
}

// GetBit returns whether lane i of the mask is set.
func (v Uint64x2) GetBit(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return v[i] != 0
}

// Int64x2 represents a 128-bit vector of 2 int64 lanes.
type Int64x2 [2]int64

// BroadcastInt64x2 creates a vector with all lanes set to the given value.
func BroadcastInt64x2(v int64) Int64x2 {
	return Int64x2{v, v}
}

// Sub performs element-wise wrapping subtraction.
func (v Int64x2) Sub(other Int64x2) Int64x2 {
	return Int64x2{v[0] - other[0], v[1] - other[1]}
}

// ConvertToFloat64 converts each lane to float64 (vcvtq_f64_s64).
func (v Int64x2) ConvertToFloat64() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}
