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

import "github.com/ajroetker/vmath/hwy"

// expScaleF32x4 turns e = n << 23 into 2^n by adding it to the exponent
// field of 1.0. Valid for |n| <= 126.
func expScaleF32x4(e hwy.Uint32x4) hwy.Float32x4 {
	return e.Add(hwy.BroadcastUint32x4(oneBits32)).AsFloat32x4()
}

// expSpecialCaseF32x4 reconstructs exp for lanes where 2^n is not
// representable on its own, by writing 2^n = s1 * s2 with both factors in
// range.
//
// For n > 0, s1 = 2^127 and s2 = 2^(n-127). For n <= 0, s1 = 2^-125 and
// s2 = 2^(n+125). When |n| > 192 the result overflows or underflows
// regardless of poly, and s1*s1 produces the correctly signed Inf or 0.
func expSpecialCaseF32x4(poly, n hwy.Float32x4, e hwy.Uint32x4, scale hwy.Float32x4, special hwy.Uint32x4) hwy.Float32x4 {
	// b = n <= 0 ? 0x82000000 : 0
	b := n.LessEqual(hwy.ZeroFloat32x4()).And(hwy.BroadcastUint32x4(expSplitAdj32))
	s1 := b.Add(hwy.BroadcastUint32x4(expSplitBits32)).AsFloat32x4()
	s2 := e.Sub(b).AsFloat32x4()
	overflow := n.Abs().Greater(hwy.BroadcastFloat32x4(expOverflowN32))

	r2 := s1.Mul(s1)
	r1 := poly.MulAdd(s2, s2).Mul(s1)
	r0 := poly.MulAdd(scale, scale)
	return r2.Merge(r1.Merge(r0, special), overflow)
}

// applySignF32x4 flips the sign bit of y in the lanes where sign has it set.
// sign is typically the XOR of the input sign and the quotient parity.
func applySignF32x4(y hwy.Float32x4, sign hwy.Uint32x4) hwy.Float32x4 {
	return y.AsUint32x4().Xor(sign).AsFloat32x4()
}

// log1pReconstructF64x2 returns k*ln2 + f + f^2*p, adding the small terms
// first: (k*Ln2Lo + c/m) + (k*Ln2Hi + f), then f^2*p in a final FMA.
func log1pReconstructF64x2(k, f, f2, cm, p hwy.Float64x2) hwy.Float64x2 {
	ylo := k.MulAdd(hwy.BroadcastFloat64x2(log1pLn2Lo64), cm)
	yhi := k.MulAdd(hwy.BroadcastFloat64x2(log1pLn2Hi64), f)
	return f2.MulAdd(p, ylo.Add(yhi))
}
