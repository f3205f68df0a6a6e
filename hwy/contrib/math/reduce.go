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

// Range reducers run on every lane unconditionally. They do not clamp: the
// lane classifier is responsible for keeping |n| inside the range where the
// shift trick and the split constants are exact, and for replacing special
// lanes with a neutral value when exception flags matter.

// reduceLn2F32x4 writes x = n*ln2 + r with n integral and |r| <= ln2/2.
//
// n is obtained with the shift trick: x*InvLn2 + 1.5*2^23 rounds to the
// nearest integer in the FMA and keeps it in the low mantissa bits of z, so
// z - Shift is n exactly and bits(z) << 23 is n already placed in the
// exponent field. r is computed with ln2 split in two so that n*Ln2Hi is
// exact for |n| < 2^10.
func reduceLn2F32x4(x hwy.Float32x4) (n, r hwy.Float32x4, e hwy.Uint32x4) {
	shift := hwy.BroadcastFloat32x4(shift32)
	z := x.MulAdd(hwy.BroadcastFloat32x4(expInvLn2_32), shift)
	n = z.Sub(shift)
	r = n.NegMulAdd(hwy.BroadcastFloat32x4(expLn2Hi32), x)
	r = n.NegMulAdd(hwy.BroadcastFloat32x4(expLn2Lo32), r)
	e = z.AsUint32x4().ShiftAllLeft(mantBits32)
	return n, r, e
}

// reduceLn2RintF32x4 is the alternate reduction using an explicit
// round-to-nearest (ties away) instead of the shift trick. It produces the
// same n except on exact ties, and is kept as a cross-check of the shift
// reduction in tests.
func reduceLn2RintF32x4(x hwy.Float32x4) (n, r hwy.Float32x4, e hwy.Uint32x4) {
	z := x.Mul(hwy.BroadcastFloat32x4(expInvLn2_32))
	n = z.Round()
	r = n.NegMulAdd(hwy.BroadcastFloat32x4(expLn2Hi32), x)
	r = n.NegMulAdd(hwy.BroadcastFloat32x4(expLn2Lo32), r)
	e = z.ConvertToInt32Round().AsUint32x4().ShiftAllLeft(mantBits32)
	return n, r, e
}

// reducePiF32x4 writes a = n*pi + r for a >= 0 with n = rint(a/pi) and
// r in [-pi/2, pi/2]. odd has the sign bit set in lanes where n is odd.
//
// pi is split into three float32 parts; each fused multiply-subtract removes
// the rounding error left by the previous one, which keeps r accurate for
// n up to 2^20/pi.
func reducePiF32x4(a hwy.Float32x4) (n, r hwy.Float32x4, odd hwy.Uint32x4) {
	shift := hwy.BroadcastFloat32x4(shift32)
	n = hwy.BroadcastFloat32x4(trigInvPi32).MulAdd(a, shift)
	odd = n.AsUint32x4().ShiftAllLeft(31)
	n = n.Sub(shift)
	r = subNPiF32x4(a, n)
	return n, r, odd
}

// reducePiHalfOffsetF32x4 is the cosine variant: n = rint((a + pi/2)/pi) - 0.5
// so that cos(a) = sin(r) * (-1)^odd with r = a - n*pi in [-pi/2, pi/2].
func reducePiHalfOffsetF32x4(a hwy.Float32x4) (n, r hwy.Float32x4, odd hwy.Uint32x4) {
	shift := hwy.BroadcastFloat32x4(shift32)
	n = hwy.BroadcastFloat32x4(trigInvPi32).MulAdd(a.Add(hwy.BroadcastFloat32x4(trigHalfPi32)), shift)
	odd = n.AsUint32x4().ShiftAllLeft(31)
	n = n.Sub(shift)
	n = n.Sub(hwy.BroadcastFloat32x4(0.5))
	r = subNPiF32x4(a, n)
	return n, r, odd
}

// subNPiF32x4 returns a - n*(pi1 + pi2 + pi3) with three fused
// multiply-subtracts.
func subNPiF32x4(a, n hwy.Float32x4) hwy.Float32x4 {
	r := hwy.BroadcastFloat32x4(trigPi1_32).NegMulAdd(n, a)
	r = hwy.BroadcastFloat32x4(trigPi2_32).NegMulAdd(n, r)
	return hwy.BroadcastFloat32x4(trigPi3_32).NegMulAdd(n, r)
}

// reduceLog1pF64x2 writes 1 + x = 2^k * (1 + f) with 1 + f in
// [sqrt(2)/2, sqrt(2)], and returns the correction term cm = c/m that
// recovers the bits of x lost when forming m = 1 + x.
//
// The exponent is taken from m + (1 - sqrt(2)/2) so that the mantissa lands
// in the interval centred on 1. Lanes with k == 0 take the shortcut f = x,
// cm = 0, which is more accurate when x is close to 0.
func reduceLog1pF64x2(x hwy.Float64x2) (k, f, cm hwy.Float64x2) {
	one := hwy.BroadcastFloat64x2(1)
	m := x.Add(one)
	mi := m.AsUint64x2()
	u := mi.Add(hwy.BroadcastUint64x2(log1pOneMHfRt2Top))

	ki := u.ShiftAllRight(mantBits64).AsInt64x2().Sub(hwy.BroadcastInt64x2(int64(oneTop12_64)))
	k = ki.ConvertToFloat64()

	utop := u.And(hwy.BroadcastUint64x2(log1pMantTopMask)).Add(hwy.BroadcastUint64x2(log1pHfRt2Top))
	ured := utop.Or(mi.And(hwy.BroadcastUint64x2(log1pBottomMask)))
	f = ured.AsFloat64x2().Sub(one)

	cm = x.Sub(m.Sub(one)).Div(m)

	k0 := k.Equal(hwy.ZeroFloat64x2())
	cm = hwy.ZeroFloat64x2().Merge(cm, k0)
	f = x.Merge(f, k0)
	return k, f, cm
}
