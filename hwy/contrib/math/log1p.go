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

// log1pInlineF64x2 computes log(1 + x) for x > -1 with no special-case
// handling. It is shared by Log1p and Acosh.
//
// log1p(x) = k*ln2 + log1p(f), with log1p(f) ~= f + f^2 * P(f) and P the
// 19-term table evaluated pairwise. Max error about 1.96 ULP away from the
// k == 0 shortcut region, 2.5 ULP overall.
func log1pInlineF64x2(x hwy.Float64x2) hwy.Float64x2 {
	k, f, cm := reduceLog1pF64x2(x)
	f2 := f.Mul(f)
	p := pairwiseHornerF64x2(f, f2, log1pPoly64[:])
	return log1pReconstructF64x2(k, f, f2, cm, p)
}

func log1pFastF64x2(x hwy.Float64x2) hwy.Float64x2 {
	special := log1pSpecialF64x2(x, false)
	y := log1pInlineF64x2(x)
	if special.AnyTrue() {
		return callScalarF64x2(Log1p, x, y, special)
	}
	return y
}

// log1pExceptF64x2 also defers |x| < 0x1p-511, where the polynomial would
// raise a spurious underflow. Special lanes are evaluated at 0.
func log1pExceptF64x2(x hwy.Float64x2) hwy.Float64x2 {
	special := log1pSpecialF64x2(x, true)
	xs := hwy.ZeroFloat64x2().Merge(x, special)
	y := log1pInlineF64x2(xs)
	if special.AnyTrue() {
		return callScalarF64x2(Log1p, x, y, special)
	}
	return y
}
