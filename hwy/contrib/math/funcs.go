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

// Funcs is a table of vector entry points bound to one classification Mode.
type Funcs struct {
	Mode Mode

	ExpF32x4 func(hwy.Float32x4) hwy.Float32x4
	SinF32x4 func(hwy.Float32x4) hwy.Float32x4
	CosF32x4 func(hwy.Float32x4) hwy.Float32x4

	AcoshF64x2 func(hwy.Float64x2) hwy.Float64x2
	Log1pF64x2 func(hwy.Float64x2) hwy.Float64x2
}

var (
	fastFuncs = Funcs{
		Mode:       ModeFast,
		ExpF32x4:   expFastF32x4,
		SinF32x4:   sinFastF32x4,
		CosF32x4:   cosFastF32x4,
		AcoshF64x2: acoshFastF64x2,
		Log1pF64x2: log1pFastF64x2,
	}
	exceptFuncs = Funcs{
		Mode:       ModeExceptionFaithful,
		ExpF32x4:   expExceptF32x4,
		SinF32x4:   sinExceptF32x4,
		CosF32x4:   cosExceptF32x4,
		AcoshF64x2: acoshExceptF64x2,
		Log1pF64x2: log1pExceptF64x2,
	}
)

// FuncsFor returns the entry points for mode. Unknown modes get the fast
// table. The returned table is shared and must not be modified.
func FuncsFor(mode Mode) *Funcs {
	if mode == ModeExceptionFaithful {
		return &exceptFuncs
	}
	return &fastFuncs
}

// Package-level entry points, bound to ActiveMode() during init.
var (
	// ExpF32x4 computes e^x. Max error 1.95 ULP.
	ExpF32x4 func(x hwy.Float32x4) hwy.Float32x4

	// SinF32x4 computes sin(x). Max error 1.886 ULP + 0.5 ULP rounding.
	SinF32x4 func(x hwy.Float32x4) hwy.Float32x4

	// CosF32x4 computes cos(x). Max error 1.886 ULP + 0.5 ULP rounding.
	CosF32x4 func(x hwy.Float32x4) hwy.Float32x4

	// AcoshF64x2 computes acosh(x). Max error 2.53 ULP.
	AcoshF64x2 func(x hwy.Float64x2) hwy.Float64x2

	// Log1pF64x2 computes log(1 + x). Max error 2.5 ULP.
	Log1pF64x2 func(x hwy.Float64x2) hwy.Float64x2
)

func init() {
	f := FuncsFor(activeMode)
	ExpF32x4 = f.ExpF32x4
	SinF32x4 = f.SinF32x4
	CosF32x4 = f.CosF32x4
	AcoshF64x2 = f.AcoshF64x2
	Log1pF64x2 = f.Log1pF64x2
}
