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

// acoshKernelF64x2 computes acosh(x) = log1p(x - 1 + sqrt((x-1)*(x+1)))
// for 1 <= x < 0x1p511. Writing the argument of log1p relative to x - 1
// keeps full precision near 1, and acosh(1) is exactly +0.
// Max error 2.53 ULP.
func acoshKernelF64x2(x hwy.Float64x2) hwy.Float64x2 {
	one := hwy.BroadcastFloat64x2(1)
	xm1 := x.Sub(one)
	u := xm1.Mul(x.Add(one))
	return log1pInlineF64x2(xm1.Add(u.Sqrt()))
}

// acoshFastF64x2 evaluates every lane on the vector path and recomputes the
// special lanes with Acosh. Out of domain lanes may raise invalid in sqrt.
func acoshFastF64x2(x hwy.Float64x2) hwy.Float64x2 {
	special := acoshSpecialF64x2(x)
	y := acoshKernelF64x2(x)
	if special.AnyTrue() {
		return callScalarF64x2(Acosh, x, y, special)
	}
	return y
}

// acoshExceptF64x2 hands the whole vector to Acosh as soon as one lane is
// special, so no vector operation ever sees an out of domain lane.
func acoshExceptF64x2(x hwy.Float64x2) hwy.Float64x2 {
	special := acoshSpecialF64x2(x)
	if special.AnyTrue() {
		return callScalarF64x2(Acosh, x, x, allLanesF64x2)
	}
	return acoshKernelF64x2(x)
}

var allLanesF64x2 = hwy.BroadcastUint64x2(^uint64(0))
