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

// Package ulp measures the error of floating-point results in units in the
// last place of the exact value.
//
// Binary32 results are compared with a binary64 reference, whose own error
// is far below a binary32 ULP. Binary64 results are compared with a
// math/big reference computed at Prec bits.
package ulp

import (
	"math"
	"math/big"
)

// Prec is the working precision of the big.Float references.
const Prec = 256

const (
	minExp32 = -126 // exponent of the smallest normal binary32
	minExp64 = -1022
)

// Ulp32 returns the error of got relative to the exact value want, in units
// of the binary32 ULP at want. NaN matches NaN, equal infinities match, and
// any other mismatch involving NaN or Inf is +Inf.
func Ulp32(got float32, want float64) float64 {
	g := float64(got)
	if special, d := compareSpecial(g, want); special {
		return d
	}
	return math.Abs(g-want) / unit(want, 24, minExp32)
}

// Ulp64 returns the error of got relative to the exact value want, in units
// of the binary64 ULP at want.
func Ulp64(got float64, want *big.Float) float64 {
	w, _ := want.Float64()
	if special, d := compareSpecial(got, w); special {
		return d
	}
	diff := new(big.Float).SetPrec(Prec).SetFloat64(got)
	diff.Sub(diff, want)
	d, _ := diff.Abs(diff).Float64()
	return d / unit(w, 53, minExp64)
}

// unit returns the ULP of a p-bit binary format at |x|, never smaller than
// the subnormal spacing.
func unit(x float64, p, minExp int) float64 {
	e := minExp
	if x != 0 {
		_, fe := math.Frexp(x) // x = frac * 2^fe, frac in [0.5, 1)
		e = max(fe-1, minExp)
	}
	return math.Ldexp(1, e-p+1)
}

func compareSpecial(got, want float64) (bool, float64) {
	switch {
	case math.IsNaN(got) && math.IsNaN(want):
		return true, 0
	case math.IsNaN(got) || math.IsNaN(want):
		return true, math.Inf(1)
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		if got == want {
			return true, 0
		}
		return true, math.Inf(1)
	}
	return false, 0
}
