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

// sin(x) = (-1)^n * sin(r) with |x| = n*pi + r and |r| <= pi/2, then the sign
// of x is applied, so sin(-x) == -sin(x) bit for bit. cos uses the same
// kernel on |x| with a half-period offset and is exactly even.

func sinFastF32x4(x hwy.Float32x4) hwy.Float32x4 {
	a := x.Abs()
	ia := a.AsUint32x4()
	return sinKernelF32x4(x, a, trigSpecialFastF32x4(ia))
}

func sinExceptF32x4(x hwy.Float32x4) hwy.Float32x4 {
	a := x.Abs()
	special := trigSpecialExceptF32x4(a.AsUint32x4())
	a = hwy.BroadcastFloat32x4(1).Merge(a, special)
	return sinKernelF32x4(x, a, special)
}

// sinKernelF32x4 evaluates sin on a = |x|, with special lanes of a already
// replaced when the caller needs it, and routes special lanes to Sinf.
func sinKernelF32x4(x, a hwy.Float32x4, special hwy.Uint32x4) hwy.Float32x4 {
	sign := x.AsUint32x4().And(hwy.BroadcastUint32x4(signMask32))

	_, r, odd := reducePiF32x4(a)

	// sin(r) ~= r + r^3 * P(r^2)
	r2 := r.Mul(r)
	y := hornerF32x4(r2, sinPoly32[:])
	y = y.Mul(r2).MulAdd(r, r)

	y = applySignF32x4(y, sign.Xor(odd))
	if special.AnyTrue() {
		return callScalarF32x4(Sinf, x, y, special)
	}
	return y
}

func cosFastF32x4(x hwy.Float32x4) hwy.Float32x4 {
	a := x.Abs()
	return cosKernelF32x4(x, a, trigSpecialFastF32x4(a.AsUint32x4()))
}

func cosExceptF32x4(x hwy.Float32x4) hwy.Float32x4 {
	a := x.Abs()
	special := trigSpecialExceptF32x4(a.AsUint32x4())
	a = hwy.BroadcastFloat32x4(1).Merge(a, special)
	return cosKernelF32x4(x, a, special)
}

func cosKernelF32x4(x, a hwy.Float32x4, special hwy.Uint32x4) hwy.Float32x4 {
	_, r, odd := reducePiHalfOffsetF32x4(a)

	// cos(a) = (-1)^odd * sin(r), sin(r) ~= r + r^3 * P(r^2)
	r2 := r.Mul(r)
	r3 := r2.Mul(r)
	y := hornerF32x4(r2, sinPoly32[:])
	y = y.MulAdd(r3, r)

	y = applySignF32x4(y, odd)
	if special.AnyTrue() {
		return callScalarF32x4(Cosf, x, y, special)
	}
	return y
}
