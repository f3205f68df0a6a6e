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

package ulp

import (
	"math"
	"math/big"
)

// Decimal expansions well beyond Prec bits.
const (
	piDigits  = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651"
	ln2Digits = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542001481021"
)

var (
	pi       = mustParse(piDigits)
	ln2      = mustParse(ln2Digits)
	sqrtHalf = NewFloat(0).Sqrt(NewFloat(0.5))
)

// log1pSeriesBound is the magnitude below which Log1p sums the Taylor series
// instead of forming 1 + x.
const log1pSeriesBound = 0x1p-20

func mustParse(s string) *big.Float {
	f, ok := NewFloat(0).SetString(s)
	if !ok {
		panic("ulp: bad constant " + s)
	}
	return f
}

// NewFloat returns x as a big.Float with precision Prec.
func NewFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(Prec).SetFloat64(x)
}

// Pi returns pi to Prec bits.
func Pi() *big.Float { return NewFloat(0).Set(pi) }

// Ln2 returns log(2) to Prec bits.
func Ln2() *big.Float { return NewFloat(0).Set(ln2) }

// Log returns the natural logarithm of x > 0.
//
// x = m * 2^e with m in [sqrt(2)/2, sqrt(2)), and
// log(m) = 2*atanh(z) = 2*(z + z^3/3 + z^5/5 + ...) with z = (m-1)/(m+1),
// |z| < 0.18.
func Log(x *big.Float) *big.Float {
	if x.Sign() <= 0 {
		panic("ulp: Log of non-positive value")
	}
	m := NewFloat(0)
	e := x.MantExp(m)
	if m.Cmp(sqrtHalf) < 0 {
		m.SetMantExp(m, 1)
		e--
	}

	one := NewFloat(1)
	z := NewFloat(0).Sub(m, one)
	z.Quo(z, NewFloat(0).Add(m, one))
	z2 := NewFloat(0).Mul(z, z)

	sum := NewFloat(0).Set(z)
	term := NewFloat(0).Set(z)
	t := NewFloat(0)
	for k := 3; sum.Sign() != 0; k += 2 {
		term.Mul(term, z2)
		t.Quo(term, NewFloat(float64(k)))
		if t.Sign() == 0 || t.MantExp(nil) < sum.MantExp(nil)-Prec {
			break
		}
		sum.Add(sum, t)
	}
	sum.Mul(sum, NewFloat(2))

	return sum.Add(sum, NewFloat(0).Mul(NewFloat(float64(e)), ln2))
}

// Log1p returns log(1 + x) for x > -1.
func Log1p(x float64) *big.Float {
	bx := NewFloat(x)
	if math.Abs(x) >= log1pSeriesBound {
		return Log(bx.Add(bx, NewFloat(1)))
	}

	// x - x^2/2 + x^3/3 - ...
	sum := NewFloat(0).Set(bx)
	term := NewFloat(0).Set(bx)
	neg := NewFloat(0).Neg(bx)
	t := NewFloat(0)
	for k := 2; sum.Sign() != 0; k++ {
		term.Mul(term, neg)
		t.Quo(term, NewFloat(float64(k)))
		if t.Sign() == 0 || t.MantExp(nil) < sum.MantExp(nil)-Prec {
			break
		}
		sum.Add(sum, t)
	}
	return sum
}

// Acosh returns log(x + sqrt(x^2 - 1)) for x >= 1.
func Acosh(x float64) *big.Float {
	bx := NewFloat(x)
	u := NewFloat(0).Mul(bx, bx)
	u.Sub(u, NewFloat(1))
	u.Sqrt(u)
	return Log(u.Add(u, bx))
}

// MulAdd returns n*c + r exactly rounded to Prec bits.
func MulAdd(n float64, c *big.Float, r float64) *big.Float {
	z := NewFloat(0).Mul(NewFloat(n), c)
	return z.Add(z, NewFloat(r))
}
