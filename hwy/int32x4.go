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

// Int32x4 represents a 128-bit vector of 4 int32 lanes.
type Int32x4 [4]int32

// BroadcastInt32x4 creates a vector with all lanes set to the given value.
func BroadcastInt32x4(v int32) Int32x4 {
	return Int32x4{v, v, v, v}
}

// Add performs element-wise wrapping addition.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// ConvertToFloat32 converts each lane to float32.
func (v Int32x4) ConvertToFloat32() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// AsUint32x4 reinterprets the two's complement bits of each lane as uint32.
func (v Int32x4) AsUint32x4() Uint32x4 {
	return Uint32x4{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])}
}
