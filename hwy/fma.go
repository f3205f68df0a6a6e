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

// FusedMulAdd64 returns a*b + c rounded once.
func FusedMulAdd64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}

// FusedMulAdd32 returns a*b + c computed exactly and rounded once to float32,
// matching a hardware single-precision FMA (vfmaq_f32, vfmadd231ps) bit for bit.
//
// The product of two float32 values is exact in float64. The sum is formed
// with an error-free transformation and rounded to odd in float64, which has
// enough spare precision (53 >= 24+2) for the final float32 rounding to be
// correct.
func FusedMulAdd32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	z := float64(c)
	s := p + z
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: s + e == p + z exactly.
	bv := s - p
	e := (p - (s - bv)) + (z - bv)
	if e == 0 {
		return float32(s)
	}

	// Round to odd: if s is even, step one ulp towards the exact value.
	bits := math.Float64bits(s)
	if bits&1 == 0 {
		if (e > 0) == (s > 0) {
			bits++
		} else {
			bits--
		}
		s = math.Float64frombits(bits)
	}
	return float32(s)
}
