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
	"github.com/xyproto/env/v2"

	"github.com/ajroetker/vmath/hwy"
)

// Mode selects how lanes are classified as special.
type Mode int

const (
	// ModeFast classifies with wide boundaries, after range reduction where
	// the function allows it. Results stay within the documented ULP bound
	// but floating-point exception flags may differ from the scalar routine.
	ModeFast Mode = iota

	// ModeExceptionFaithful defers to the scalar routine every lane whose
	// evaluation could raise overflow, underflow or invalid, and replaces
	// those lanes with a neutral value before the branch-free reduction.
	ModeExceptionFaithful
)

// String returns the mode name used by VMATH_SIMD_EXCEPT reports and the
// vmathulp tool.
func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeExceptionFaithful:
		return "except"
	default:
		return "unknown"
	}
}

// simdExceptEnv is the environment variable that overrides the build-time
// default mode at package initialisation.
const simdExceptEnv = "VMATH_SIMD_EXCEPT"

// activeMode is resolved once in init and never changes afterwards.
var activeMode = resolveMode()

// ActiveMode returns the mode the package-level entry points were bound to.
func ActiveMode() Mode {
	return activeMode
}

// DefaultMode returns the mode selected at build time by the
// vmath_simdexcept build tag.
func DefaultMode() Mode {
	return defaultMode
}

func resolveMode() Mode {
	if env.Str(simdExceptEnv) == "" {
		return defaultMode
	}
	if hwy.BoolEnv(simdExceptEnv) {
		return ModeExceptionFaithful
	}
	return ModeFast
}
