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

import stdmath "math"

// Scalar reference routines. They are the correctness authority for special
// lanes: signed zeros, infinities, NaN propagation and domain errors all come
// from here. The binary32 routines evaluate in binary64 and round once.

// Expf returns e**x rounded to float32.
func Expf(x float32) float32 {
	return float32(stdmath.Exp(float64(x)))
}

// Sinf returns the sine of x rounded to float32.
func Sinf(x float32) float32 {
	return float32(stdmath.Sin(float64(x)))
}

// Cosf returns the cosine of x rounded to float32.
func Cosf(x float32) float32 {
	return float32(stdmath.Cos(float64(x)))
}

// Acosh returns the inverse hyperbolic cosine of x. It returns NaN for
// x < 1 and for NaN.
func Acosh(x float64) float64 {
	return stdmath.Acosh(x)
}

// Log1p returns log(1 + x). It returns -Inf for x == -1 and NaN for x < -1.
func Log1p(x float64) float64 {
	return stdmath.Log1p(x)
}
