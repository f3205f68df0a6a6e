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

// Polynomial evaluation schedules. Coefficients are broadcast from the
// immutable tables in constants.go; every step is a fused multiply-add so the
// rounding behaviour matches the error analysis of each table.

// hornerF32x4 evaluates c[0] + x*(c[1] + x*(c[2] + ... + x*c[n-1])).
func hornerF32x4(x hwy.Float32x4, c []float32) hwy.Float32x4 {
	p := hwy.BroadcastFloat32x4(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		p = p.MulAdd(x, hwy.BroadcastFloat32x4(c[i]))
	}
	return p
}

// estrin5F32x4 evaluates c[4]*r + c[3]*r^2 + c[2]*r^3 + c[1]*r^4 + c[0]*r^5
// given r and r2 = r*r.
//
// The two inner pairs are independent, which shortens the dependency chain
// from five FMAs to three compared to Horner:
//
//	p = c0*r + c1
//	q = c2*r + c3
//	q = p*r2 + q
//	poly = q*r2 + c4*r
func estrin5F32x4(r, r2 hwy.Float32x4, c *[5]float32) hwy.Float32x4 {
	p := hwy.BroadcastFloat32x4(c[0]).MulAdd(r, hwy.BroadcastFloat32x4(c[1]))
	q := hwy.BroadcastFloat32x4(c[2]).MulAdd(r, hwy.BroadcastFloat32x4(c[3]))
	q = p.MulAdd(r2, q)
	p = hwy.BroadcastFloat32x4(c[4]).Mul(r)
	return q.MulAdd(r2, p)
}

// pairwiseHornerF64x2 evaluates c[0] + c[1]*x + ... + c[n-1]*x^(n-1) as a
// Horner scheme in x2 = x*x over the pairs (c[i] + c[i+1]*x). The pairs are
// independent of the running sum, which halves the dependency chain and
// improves accuracy for long tables.
func pairwiseHornerF64x2(x, x2 hwy.Float64x2, c []float64) hwy.Float64x2 {
	n := len(c)
	var p hwy.Float64x2
	i := n - 3
	if n%2 == 1 {
		p = hwy.BroadcastFloat64x2(c[n-1])
	} else {
		p = x.MulAdd(hwy.BroadcastFloat64x2(c[n-1]), hwy.BroadcastFloat64x2(c[n-2]))
		i = n - 4
	}
	for ; i >= 0; i -= 2 {
		pair := x.MulAdd(hwy.BroadcastFloat64x2(c[i+1]), hwy.BroadcastFloat64x2(c[i]))
		p = p.MulAdd(x2, pair)
	}
	return p
}
