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

// Bulk slice APIs. Each processes min(len(in), len(out)) elements: full
// vectors first, then the tail as one vector padded with a value that is
// never special, storing only the live lanes. in and out may be the same
// slice.

const (
	lanesF32 = 4
	lanesF64 = 2
)

// Tail padding. 1 is outside every special range used here.
const (
	padF32 float32 = 1
	padF64 float64 = 1
)

// ExpPoly computes e^x for each element of in using the active mode.
func ExpPoly(in, out []float32) { activeFuncs().ExpPoly(in, out) }

// SinPoly computes sin(x) for each element of in using the active mode.
func SinPoly(in, out []float32) { activeFuncs().SinPoly(in, out) }

// CosPoly computes cos(x) for each element of in using the active mode.
func CosPoly(in, out []float32) { activeFuncs().CosPoly(in, out) }

// AcoshPoly computes acosh(x) for each element of in using the active mode.
func AcoshPoly(in, out []float64) { activeFuncs().AcoshPoly(in, out) }

// Log1pPoly computes log(1 + x) for each element of in using the active mode.
func Log1pPoly(in, out []float64) { activeFuncs().Log1pPoly(in, out) }

func activeFuncs() *Funcs { return FuncsFor(activeMode) }

// ExpPoly computes e^x for each element of in.
func (f *Funcs) ExpPoly(in, out []float32) { mapF32x4(f.ExpF32x4, in, out) }

// SinPoly computes sin(x) for each element of in.
func (f *Funcs) SinPoly(in, out []float32) { mapF32x4(f.SinF32x4, in, out) }

// CosPoly computes cos(x) for each element of in.
func (f *Funcs) CosPoly(in, out []float32) { mapF32x4(f.CosF32x4, in, out) }

// AcoshPoly computes acosh(x) for each element of in.
func (f *Funcs) AcoshPoly(in, out []float64) { mapF64x2(f.AcoshF64x2, in, out) }

// Log1pPoly computes log(1 + x) for each element of in.
func (f *Funcs) Log1pPoly(in, out []float64) { mapF64x2(f.Log1pF64x2, in, out) }

func mapF32x4(fn func(hwy.Float32x4) hwy.Float32x4, in, out []float32) {
	n := min(len(in), len(out))
	hwy.ProcessWithTail(n, lanesF32,
		func(offset int) {
			fn(hwy.LoadFloat32x4(in[offset:])).StoreSlice(out[offset:])
		},
		func(offset, count int) {
			x := hwy.LoadFloat32x4Padded(in[offset:offset+count], padF32)
			fn(x).StorePartial(out[offset : offset+count])
		},
	)
}

func mapF64x2(fn func(hwy.Float64x2) hwy.Float64x2, in, out []float64) {
	n := min(len(in), len(out))
	hwy.ProcessWithTail(n, lanesF64,
		func(offset int) {
			fn(hwy.LoadFloat64x2(in[offset:])).StoreSlice(out[offset:])
		},
		func(offset, count int) {
			x := hwy.LoadFloat64x2Padded(in[offset:offset+count], padF64)
			fn(x).StorePartial(out[offset : offset+count])
		},
	)
}
