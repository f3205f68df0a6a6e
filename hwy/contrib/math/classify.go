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

// Lane classifiers. Each returns a mask with all-ones in the lanes that must
// be recomputed by the scalar routine. Ranges are tested on bit patterns: a
// single unsigned compare of (bits - lo) against (hi - lo) covers both ends,
// because values below lo wrap around to huge unsigned numbers. Inf and NaN
// have the largest magnitude bit patterns and always land on the special side.

// expSpecialExceptF32x4 flags lanes where |x| <= 0x1p-63 or |x| >= 0x1p6.
// Both ends are inclusive: at the lower end exp(x) rounds to 1 with only the
// inexact flag raised, which the scalar routine reproduces exactly.
func expSpecialExceptF32x4(x hwy.Float32x4) hwy.Uint32x4 {
	ia := x.AsUint32x4().And(hwy.BroadcastUint32x4(absMask32))
	return ia.Sub(hwy.BroadcastUint32x4(expTinyBound32 + 1)).
		GreaterEqual(hwy.BroadcastUint32x4(expBigBound32 - expTinyBound32 - 1))
}

// expSpecialFastF32x4 flags lanes whose reduced quotient cannot be written
// into a binary32 exponent in one step.
func expSpecialFastF32x4(n hwy.Float32x4) hwy.Uint32x4 {
	return n.Abs().Greater(hwy.BroadcastFloat32x4(expSpecialN32))
}

// trigSpecialExceptF32x4 flags lanes where |x| < 0x1p-61 or |x| >= 0x1p20.
// ir is the bit pattern of |x|.
func trigSpecialExceptF32x4(ir hwy.Uint32x4) hwy.Uint32x4 {
	return ir.Sub(hwy.BroadcastUint32x4(trigTinyBound32)).
		GreaterEqual(hwy.BroadcastUint32x4(trigThresh32))
}

// trigSpecialFastF32x4 flags lanes where |x| >= 0x1p20, beyond which the
// three-part pi reduction loses accuracy.
func trigSpecialFastF32x4(ir hwy.Uint32x4) hwy.Uint32x4 {
	return ir.GreaterEqual(hwy.BroadcastUint32x4(trigRangeVal32))
}

// acoshSpecialF64x2 flags lanes outside [1, 0x1p511): values below 1,
// negative values, huge values where x*x overflows, Inf and NaN.
func acoshSpecialF64x2(x hwy.Float64x2) hwy.Uint64x2 {
	top12 := x.AsUint64x2().ShiftAllRight(mantBits64)
	return top12.Sub(hwy.BroadcastUint64x2(oneTop12_64)).
		GreaterEqual(hwy.BroadcastUint64x2(acoshBigBoundTop64 - oneTop12_64))
}

// log1pSpecialF64x2 flags x <= -1, -Inf, Inf and NaN. When tiny is set it
// also flags |x| < 0x1p-511, where f*f in the polynomial would underflow.
func log1pSpecialF64x2(x hwy.Float64x2, tiny bool) hwy.Uint64x2 {
	ix := x.AsUint64x2()
	ia := ix.And(hwy.BroadcastUint64x2(absMask64))
	special := ia.GreaterEqual(hwy.BroadcastUint64x2(log1pInfBits64)).
		Or(ix.GreaterEqual(hwy.BroadcastUint64x2(log1pMinusOneBits64)))
	if tiny {
		special = special.Or(ia.Less(hwy.BroadcastUint64x2(log1pTinyBits64)))
	}
	return special
}
