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

// Uint32x4 represents a 128-bit vector of 4 uint32 lanes.
//
// It doubles as the lane predicate mask for Float32x4: a mask lane is either
// 0xffffffff (true) or 0 (false). Integer arithmetic wraps modulo 2^32.
type Uint32x4 [4]uint32

// BroadcastUint32x4 creates a vector with all lanes set to the given value.
func BroadcastUint32x4(v uint32) Uint32x4 {
	return Uint32x4{v, v, v, v}
}

// Get returns the element at the given index.
func (v Uint32x4) Get(i int) uint32 {
	return v[i]
}

// Add performs element-wise wrapping addition.
func (v Uint32x4) Add(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs element-wise wrapping subtraction.
func (v Uint32x4) Sub(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// And performs bitwise AND.
func (v Uint32x4) And(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] & other[0], v[1] & other[1], v[2] & other[2], v[3] & other[3]}
}

// Or performs bitwise OR.
func (v Uint32x4) Or(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] | other[0], v[1] | other[1], v[2] | other[2], v[3] | other[3]}
}

// Xor performs bitwise XOR.
func (v Uint32x4) Xor(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] ^ other[0], v[1] ^ other[1], v[2] ^ other[2], v[3] ^ other[3]}
}

// AndNot returns v & ^other.
func (v Uint32x4) AndNot(other Uint32x4) Uint32x4 {
	return Uint32x4{v[0] &^ other[0], v[1] &^ other[1], v[2] &^ other[2], v[3] &^ other[3]}
}

// Not performs bitwise NOT.
func (v Uint32x4) Not() Uint32x4 {
	return Uint32x4{^v[0], ^v[1], ^v[2], ^v[3]}
}

// ShiftAllLeft shifts every lane left by count bits.
func (v Uint32x4) ShiftAllLeft(count uint) Uint32x4 {
	return Uint32x4{v[0] << count, v[1] << count, v[2] << count, v[3] << count}
}

// ShiftAllRight shifts every lane right by count bits (logical shift).
func (v Uint32x4) ShiftAllRight(count uint) Uint32x4 {
	return Uint32x4{v[0] >> count, v[1] >> count, v[2] >> count, v[3] >> count}
}

// GreaterEqual returns a mask of lanes where v >= other as unsigned integers.
func (v Uint32x4) GreaterEqual(other Uint32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] >= other[i])
	}
	return m
}

// Greater returns a mask of lanes where v > other as unsigned integers.
func (v Uint32x4) Greater(other Uint32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] > other[i])
	}
	return m
}

// Equal returns a mask of lanes where v == other.
func (v Uint32x4) Equal(other Uint32x4) Uint32x4 {
	var m Uint32x4
	for i := range m {
		m[i] = maskBit32(v[i] == other[i])
	}
	return m
}

// Select returns yes where the mask lane is set and no elsewhere (vbslq).
// The receiver is the mask.
func (v Uint32x4) Select(yes, no Uint32x4) Uint32x4 {
	return yes.And(v).Or(no.AndNot(v))
}

// AsFloat32x4 reinterprets the bits of each lane as float32.
func (v Uint32x4) AsFloat32x4() Float32x4 {
	return Float32x4{
		math.Float32frombits(v[0]),
		math.Float32frombits(v[1]),
		math.Float32frombits(v[2]),
		math.Float32frombits(v[3]),
	}
}

// ===== Mask reductions =====

// AnyTrue returns true if at least one lane is non-zero.
func (v Uint32x4) AnyTrue() bool {
	return v[0]|v[1]|v[2]|v[3] != 0
}

// AllTrue returns true if every lane is non-zero.
func (v Uint32x4) AllTrue() bool {
	return v[0] != 0 && v[1] != 0 && v[2] != 0 && v[3] != 0
}

// CountTrue returns the number of non-zero lanes.
func (v Uint32x4) CountTrue() int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}

// GetBit returns whether lane i of the mask is set.
func (v Uint32x4) GetBit(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return v[i] != 0
}
