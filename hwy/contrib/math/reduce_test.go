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

import (
	stdmath "math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/vmath/hwy"
	"github.com/ajroetker/vmath/internal/ulp"
)

// roundTripError returns |n*unit + r - x| computed exactly.
func roundTripError(n float64, unit *big.Float, r, x float64) float64 {
	z := ulp.MulAdd(n, unit, r)
	z.Sub(z, ulp.NewFloat(x))
	d, _ := z.Abs(z).Float64()
	return d
}

func expReductionInputs() []float32 {
	xs := linSweep32(-87, 88, 4001)
	xs = append(xs, bitSweep32(0x1p-30, 88, 2001)...)
	xs = append(xs, negate32(bitSweep32(0x1p-30, 103, 2001))...)
	return xs
}

func TestReduceLn2RoundTrip(t *testing.T) {
	ln2 := ulp.Ln2()
	xs := expReductionInputs()
	for i := 0; i+4 <= len(xs); i += 4 {
		x := hwy.LoadFloat32x4(xs[i:])
		n, r, e := reduceLn2F32x4(x)
		for j := range 4 {
			nj, rj := float64(n[j]), float64(r[j])
			require.Equal(t, stdmath.Trunc(nj), nj, "n not integral for x=%g", x[j])
			assert.LessOrEqual(t, stdmath.Abs(rj), stdmath.Ln2/2+stdmath.Abs(nj)*0x1p-24+1e-7, "r out of range for x=%g", x[j])

			// r carries one rounding, and Ln2Hi + Ln2Lo misses ln2 by < 2^-44.
			tol := 0x1p-24*stdmath.Abs(rj) + stdmath.Abs(nj)*0x1p-44
			assert.LessOrEqual(t, roundTripError(nj, ln2, rj, float64(x[j])), tol, "x=%g", x[j])

			// e holds n in the exponent field.
			assert.Equal(t, uint32(int32(nj))<<23, e[j], "x=%g", x[j])
		}
	}
}

// TestReduceLn2RintAgrees cross-checks the rint-based reduction against the
// shift-based one. They may only disagree by one when x/ln2 is within
// rounding of a half-integer.
func TestReduceLn2RintAgrees(t *testing.T) {
	xs := expReductionInputs()
	mismatches := 0
	for i := 0; i+4 <= len(xs); i += 4 {
		x := hwy.LoadFloat32x4(xs[i:])
		n1, r1, e1 := reduceLn2F32x4(x)
		n2, r2, e2 := reduceLn2RintF32x4(x)
		for j := range 4 {
			if n1[j] == n2[j] {
				assert.Equal(t, r1[j], r2[j], "x=%g", x[j])
				assert.Equal(t, e1[j], e2[j], "x=%g", x[j])
				continue
			}
			mismatches++
			z := float64(x[j]) / stdmath.Ln2
			frac := stdmath.Abs(z - stdmath.Trunc(z))
			assert.Equal(t, float32(1), float32(stdmath.Abs(float64(n1[j]-n2[j]))), "x=%g", x[j])
			assert.InDelta(t, 0.5, frac, 1e-5*stdmath.Max(1, stdmath.Abs(z)), "x=%g", x[j])
		}
	}
	assert.Less(t, mismatches, len(xs)/100)
}

func TestReducePiRoundTrip(t *testing.T) {
	pi := ulp.Pi()
	xs := linSweep32(0, 100, 4001)
	xs = append(xs, bitSweep32(0x1p-20, stdmath.Nextafter32(0x1p20, 0), 8001)...)

	for _, tt := range []struct {
		name   string
		reduce func(hwy.Float32x4) (hwy.Float32x4, hwy.Float32x4, hwy.Uint32x4)
		offset float64
	}{
		{"sin", reducePiF32x4, 0},
		{"cos", reducePiHalfOffsetF32x4, 0.5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i+4 <= len(xs); i += 4 {
				x := hwy.LoadFloat32x4(xs[i:])
				n, r, odd := tt.reduce(x)
				for j := range 4 {
					nj, rj := float64(n[j]), float64(r[j])
					require.Equal(t, stdmath.Trunc(nj+tt.offset), nj+tt.offset, "n has wrong fraction for x=%g", x[j])
					assert.LessOrEqual(t, stdmath.Abs(rj), stdmath.Pi/2+stdmath.Abs(nj)*0x1p-22+1e-6, "r out of range for x=%g", x[j])

					// Three roundings on values no larger than |r| + |n|*2^-23.
					tol := 0x1p-22 * (stdmath.Abs(rj) + stdmath.Abs(nj)*0x1p-23)
					assert.LessOrEqual(t, roundTripError(nj, pi, rj, float64(x[j])), tol, "x=%g", x[j])

					wantOdd := int64(nj+tt.offset)&1 == 1
					assert.Equal(t, wantOdd, odd[j] == signMask32, "parity for x=%g", x[j])
				}
			}
		})
	}
}

func TestReduceLog1p(t *testing.T) {
	xs := []float64{-0.9, -0.5, -0.3, -0x1p-30, 0, 0x1p-30, 0.3, 0.41, 0.5, 1, 3, 1e10, 1e300}
	xs = append(xs, bitSweep64(0x1p-40, 1e300, 2001)...)
	lo, hi := stdmath.Sqrt2/2-1, stdmath.Sqrt2-1
	for i := 0; i+2 <= len(xs); i += 2 {
		x := hwy.LoadFloat64x2(xs[i:])
		k, f, cm := reduceLog1pF64x2(x)
		for j := range 2 {
			kj, fj := k[j], f[j]
			require.Equal(t, stdmath.Trunc(kj), kj, "k not integral for x=%g", x[j])
			m := 1 + x[j]
			if kj == 0 {
				assert.Equal(t, x[j], fj, "k == 0 shortcut for x=%g", x[j])
				assert.Zero(t, cm[j], "k == 0 shortcut for x=%g", x[j])
				continue
			}
			assert.GreaterOrEqual(t, fj, lo*(1+1e-6), "x=%g", x[j])
			assert.Less(t, fj, hi*(1+1e-6), "x=%g", x[j])
			assert.Equal(t, m, stdmath.Ldexp(1+fj, int(kj)), "2^k*(1+f) != 1+x for x=%g", x[j])
			assert.Equal(t, (x[j]-(m-1))/m, cm[j], "x=%g", x[j])
		}
	}
}
