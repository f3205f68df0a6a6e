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

// Coefficients and thresholds are written as hexadecimal floating-point
// literals so that each one denotes exactly the binary32/binary64 value the
// error analysis was done with. Do not replace them with decimal
// approximations; constants_test.go pins the bit patterns.

// =============================================================================
// Exp (float32)
// =============================================================================

// expPoly32 approximates exp(r) - 1 - ... on [-ln2/2, ln2/2]:
// exp(r) ~= 1 + C4*r + C3*r^2 + C2*r^3 + C1*r^4 + C0*r^5.
// Max error 1.45358 + 0.5 ULP.
var expPoly32 = [5]float32{
	0x1.0e4020p-7,
	0x1.573e2ep-5,
	0x1.555e66p-3,
	0x1.fffdb6p-2,
	0x1.ffffecp-1,
}

const (
	// shift32 is 1.5*2^23: adding it rounds a float32 of magnitude < 2^22
	// to the nearest integer and leaves that integer in the low mantissa bits.
	shift32 float32 = 0x1.8p23

	expInvLn2_32 float32 = 0x1.715476p+0
	expLn2Hi32   float32 = 0x1.62e4p-1
	expLn2Lo32   float32 = 0x1.7f7d1cp-20

	// Exception-faithful boundaries on |x| bits: 0x1p-63 and 0x1p6.
	expTinyBound32 uint32 = 0x20000000
	expBigBound32  uint32 = 0x42800000

	// Fast-mode boundaries on |n|.
	expSpecialN32  float32 = 126
	expOverflowN32 float32 = 192

	// 2^127 and the exponent adjustment used to split 2^n into s1*s2.
	expSplitBits32 uint32 = 0x7f000000
	expSplitAdj32  uint32 = 0x82000000

	oneBits32  uint32 = 0x3f800000
	signMask32 uint32 = 0x80000000
	absMask32  uint32 = 0x7fffffff
	mantBits32 uint   = 23
)

// =============================================================================
// Sin / Cos (float32)
// =============================================================================

// sinPoly32 holds the odd coefficients of sin(r) on [-pi/2, pi/2]:
// sin(r) ~= r + C0*r^3 + C1*r^5 + C2*r^7 + C3*r^9. Max error 1.886 ULP.
var sinPoly32 = [4]float32{
	-0x1.555548p-3,
	0x1.110df4p-7,
	-0x1.9f42eap-13,
	0x1.5b2e76p-19,
}

const (
	// pi split into three parts: pi ~= pi1 + pi2 + pi3 to about 2^-73.
	trigPi1_32 float32 = 0x1.921fb6p+1
	trigPi2_32 float32 = -0x1.777a5cp-24
	trigPi3_32 float32 = -0x1.ee59dap-49

	trigInvPi32  float32 = 0x1.45f306p-2
	trigHalfPi32 float32 = 0x1.921fb6p0

	// Exception-faithful: |x| < 0x1p-61 or |x| >= 0x1p20 is special.
	// The threshold is RangeVal - TinyBound so one unsigned compare covers both.
	trigTinyBound32 uint32 = 0x21000000
	trigThresh32    uint32 = 0x28800000

	// Fast: |x| >= 0x1p20 is special.
	trigRangeVal32 uint32 = 0x49800000
)

// =============================================================================
// Log1p / Acosh (float64)
// =============================================================================

// log1pPoly64 approximates (log1p(f) - f) / f^2 on [sqrt(2)/2 - 1, sqrt(2) - 1].
var log1pPoly64 = [19]float64{
	-0x1.ffffffffffffbp-2, 0x1.55555555551a9p-2, -0x1.00000000008e3p-2,
	0x1.9999999a32797p-3, -0x1.555555552fecfp-3, 0x1.249248e071e5ap-3,
	-0x1.ffffff8bf8482p-4, 0x1.c71c8f07da57ap-4, -0x1.9999ca4ccb617p-4,
	0x1.7459ad2e1dfa3p-4, -0x1.554d2680a3ff2p-4, 0x1.3b4c54d487455p-4,
	-0x1.2548a9ffe80e6p-4, 0x1.0f389a24b2e07p-4, -0x1.eee4db15db335p-5,
	0x1.e95b494d4a5ddp-5, -0x1.15fdf07cb7c73p-4, 0x1.0310b70800fcfp-4,
	-0x1.cfa7385bdb37ep-6,
}

const (
	log1pLn2Hi64 float64 = 0x1.62e42fefa3800p-1
	log1pLn2Lo64 float64 = 0x1.ef35793c76730p-45

	// top32(asuint64(sqrt(2)/2)) << 32
	log1pHfRt2Top uint64 = 0x3fe6a09e00000000

	// (top32(asuint64(1)) - top32(asuint64(sqrt(2)/2))) << 32
	log1pOneMHfRt2Top uint64 = 0x00095f6200000000
	log1pMantTopMask  uint64 = 0x000fffff00000000
	log1pBottomMask   uint64 = 0x00000000ffffffff

	oneTop12_64 uint64 = 0x3ff
	mantBits64  uint   = 52

	// Log1p special lanes: |x| >= Inf (Inf and NaN), x <= -1 (and -Inf, -NaN).
	log1pInfBits64      uint64 = 0x7ff0000000000000
	log1pMinusOneBits64 uint64 = 0xbff0000000000000

	// Exception-faithful mode also defers |x| < 0x1p-511, where f*f underflows.
	log1pTinyBits64 uint64 = 0x2000000000000000

	// acosh special lanes: top12(x) - OneTop >= BigBoundTop - OneTop, which
	// covers x < 1, x >= 0x1p511, negative inputs, Inf and NaN.
	acoshBigBoundTop64 uint64 = 0x5fe

	absMask64 uint64 = 0x7fffffffffffffff
)
