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

package hwy

import (
	"unsafe"

	"github.com/xyproto/env/v2"
)

// DispatchLevel names the widest instruction set the CPU offers. The vector
// types in this package are fixed at 128 bits and portable; the level is
// reported so tools and benchmarks can record where they ran.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Detected once by the per-architecture init.
var (
	currentLevel DispatchLevel
	currentWidth int // register width in bytes
	hasFMA       bool
)

// CurrentLevel returns the detected instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width of CurrentLevel in bytes: 16 for
// scalar, SSE2 and NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA returns true if fused multiply-add runs in hardware. FusedMulAdd32
// and FusedMulAdd64 are exact either way; this only affects speed.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv reports whether HWY_NO_SIMD is true. The target is then reported
// as scalar whatever the CPU supports.
func NoSimdEnv() bool {
	return BoolEnv("HWY_NO_SIMD")
}

// BoolEnv reports whether the named environment variable is set to a true
// value such as "1", "true", "yes" or "on". Unset or empty is false.
func BoolEnv(name string) bool {
	return env.Bool(name)
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // one Float32x4
}

// MaxLanes returns how many T fit in one register of the detected target,
// for example 8 float32 lanes under AVX2. It is never less than the lane
// count of the fixed 128-bit types.
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}
