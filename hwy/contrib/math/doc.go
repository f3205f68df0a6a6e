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

// Package math provides vectorized elementary functions with correct
// special-case behaviour.
//
// Every function follows the same pipeline: classify the lanes that need the
// scalar routine, reduce the argument, evaluate a polynomial, reconstruct the
// result, then patch the special lanes with the scalar result.
//
// # Vector Functions
//
// Binary32, four lanes:
//   - ExpF32x4(x Float32x4) Float32x4 - e^x, max error 1.95 ULP
//   - SinF32x4(x Float32x4) Float32x4 - sin(x), max error 2.39 ULP
//   - CosF32x4(x Float32x4) Float32x4 - cos(x), max error 2.39 ULP
//
// Binary64, two lanes:
//   - AcoshF64x2(x Float64x2) Float64x2 - acosh(x), max error 2.53 ULP
//   - Log1pF64x2(x Float64x2) Float64x2 - log(1 + x), max error 2.5 ULP
//
// Expf, Sinf, Cosf, Acosh and Log1p are the scalar routines used for
// special lanes. They are exported so callers can check a vector result
// against the value a special lane would get.
//
// # Bulk Functions
//
// ExpPoly, SinPoly, CosPoly, AcoshPoly and Log1pPoly apply the vector
// functions to slices of any length. The Parallel variants split the slice
// over a workerpool.Pool and produce bit-identical results.
//
// # Modes
//
// ModeFast classifies lanes with wide bounds and patches only lanes whose
// result the vector path cannot produce. ModeExceptionFaithful also sends
// lanes that would raise overflow, underflow or invalid to the scalar
// routine, and feeds a neutral value to the vector path in their place.
//
// The package-level functions use ActiveMode, which is DefaultMode unless the
// VMATH_SIMD_EXCEPT environment variable is set when the package is
// initialised. Build with -tags vmath_simdexcept to make
// ModeExceptionFaithful the default. FuncsFor returns the table for either
// mode regardless of the active one.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/vmath/hwy"
//	    "github.com/ajroetker/vmath/hwy/contrib/math"
//	)
//
//	func SoftplusTail(x hwy.Float64x2) hwy.Float64x2 {
//	    return math.Log1pF64x2(x) // log(1 + x) for x near zero
//	}
//
//	func Gaussian(in, out []float32) {
//	    for i, x := range in {
//	        out[i] = -x * x / 2
//	    }
//	    math.ExpPoly(out, out)
//	}
package math
