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

// expFastF32x4 computes e^x for a Float32x4 vector.
//
// exp(x) = 2^n * (1 + poly(r)), with x = n*ln2 + r and |r| <= ln2/2.
// Lanes with |n| > 126 are rebuilt with a split scale, so the result stays
// within 1.95 ULP over the whole binary32 range without calling the scalar
// routine. Exception flags are not preserved for those lanes.
func expFastF32x4(x hwy.Float32x4) hwy.Float32x4 {
	n, r, e := reduceLn2F32x4(x)
	scale := expScaleF32x4(e)
	special := expSpecialFastF32x4(n)

	r2 := r.Mul(r)
	poly := estrin5F32x4(r, r2, &expPoly32)

	if special.AnyTrue() {
		return expSpecialCaseF32x4(poly, n, e, scale, special)
	}
	return poly.MulAdd(scale, scale)
}

// expExceptF32x4 computes e^x for a Float32x4 vector, deferring every lane
// with |x| <= 0x1p-63 or |x| >= 0x1p6 to Expf.
//
// Those lanes are replaced by 1 before the reduction, so the vector path
// never overflows, underflows or operates on NaN.
func expExceptF32x4(x hwy.Float32x4) hwy.Float32x4 {
	special := expSpecialExceptF32x4(x)
	xs := hwy.BroadcastFloat32x4(1).Merge(x, special)

	_, r, e := reduceLn2F32x4(xs)
	scale := expScaleF32x4(e)

	r2 := r.Mul(r)
	poly := estrin5F32x4(r, r2, &expPoly32)
	y := poly.MulAdd(scale, scale)

	if special.AnyTrue() {
		return callScalarF32x4(Expf, x, y, special)
	}
	return y
}

// expRintF32x4 is expFastF32x4 with the rint-based reduction. It agrees with
// the production path to within the same bound and exists to cross-check it.
func expRintF32x4(x hwy.Float32x4) hwy.Float32x4 {
	n, r, e := reduceLn2RintF32x4(x)
	scale := expScaleF32x4(e)
	special := expSpecialFastF32x4(n)

	r2 := r.Mul(r)
	poly := estrin5F32x4(r, r2, &expPoly32)

	if special.AnyTrue() {
		return expSpecialCaseF32x4(poly, n, e, scale, special)
	}
	return poly.MulAdd(scale, scale)
}
