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

// The fallbacks are kept out of line so the compiler cannot move the scalar
// calls, and whatever exceptions they raise, into the branch-free vector
// path. Callers only reach them after special.AnyTrue().

// callScalarF32x4 returns y with every lane flagged in special replaced by
// f applied to the original input lane.
//
//go:noinline
func callScalarF32x4(f func(float32) float32, x, y hwy.Float32x4, special hwy.Uint32x4) hwy.Float32x4 {
	for i := range y {
		if special.GetBit(i) {
			y[i] = f(x[i])
		}
	}
	return y
}

// callScalarF64x2 is the binary64 counterpart of callScalarF32x4.
//
//go:noinline
func callScalarF64x2(f func(float64) float64, x, y hwy.Float64x2, special hwy.Uint64x2) hwy.Float64x2 {
	for i := range y {
		if special.GetBit(i) {
			y[i] = f(x[i])
		}
	}
	return y
}
