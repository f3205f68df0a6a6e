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

package main

import (
	"fmt"
	"math"
	"math/big"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	vmath "github.com/ajroetker/vmath/hwy/contrib/math"
	"github.com/ajroetker/vmath/hwy/contrib/workerpool"
	"github.com/ajroetker/vmath/internal/ulp"
)

// interval is a closed input range. Spacing is linear in value unless Log
// is set, in which case points are evenly spaced in bit pattern.
type interval struct {
	Lo, Hi float64
	Log    bool
}

func (iv interval) String() string {
	if iv.Log {
		return fmt.Sprintf("[%g, %g] log", iv.Lo, iv.Hi)
	}
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// target describes one vector function: its precision, documented bound,
// default sweep domain, and how to evaluate and check it.
type target struct {
	Name   string
	Bits   int
	Bound  float64
	Domain []interval

	eval32 func(f *vmath.Funcs, pool *workerpool.Pool, in, out []float32)
	ref32  func(float64) float64

	eval64 func(f *vmath.Funcs, pool *workerpool.Pool, in, out []float64)
	ref64  func(float64) *big.Float
}

var targets = []target{
	{
		Name:  "exp",
		Bits:  32,
		Bound: 2.0,
		Domain: []interval{
			{Lo: -87.3, Hi: 88.7},
			{Lo: -103.9, Hi: -87.4},
			{Lo: 0x1p-70, Hi: 1, Log: true},
		},
		eval32: (*vmath.Funcs).ParallelExpPoly,
		ref32:  math.Exp,
	},
	{
		Name:  "sin",
		Bits:  32,
		Bound: 2.4,
		Domain: []interval{
			{Lo: -math.Pi, Hi: math.Pi},
			{Lo: 0x1p-20, Hi: 0x1.fffffep19, Log: true},
		},
		eval32: (*vmath.Funcs).ParallelSinPoly,
		ref32:  math.Sin,
	},
	{
		Name:  "cos",
		Bits:  32,
		Bound: 2.4,
		Domain: []interval{
			{Lo: -math.Pi, Hi: math.Pi},
			{Lo: 0x1p-20, Hi: 0x1.fffffep19, Log: true},
		},
		eval32: (*vmath.Funcs).ParallelCosPoly,
		ref32:  math.Cos,
	},
	{
		Name:  "acosh",
		Bits:  64,
		Bound: 3.5,
		Domain: []interval{
			{Lo: 1, Hi: 2},
			{Lo: 2, Hi: 0x1p510, Log: true},
		},
		eval64: (*vmath.Funcs).ParallelAcoshPoly,
		ref64:  ulp.Acosh,
	},
	{
		Name:  "log1p",
		Bits:  64,
		Bound: 2.6,
		Domain: []interval{
			{Lo: -0.9, Hi: 1},
			{Lo: 0x1p-50, Hi: 1e300, Log: true},
		},
		eval64: (*vmath.Funcs).ParallelLog1pPoly,
		ref64:  ulp.Log1p,
	},
}

func targetNames() []string {
	return lo.Map(targets, func(t target, _ int) string { return t.Name })
}

// selectTargets returns the targets named in names, in table order, or all of
// them when names is empty.
func selectTargets(names []string) ([]target, error) {
	if len(names) == 0 {
		return targets, nil
	}
	known := targetNames()
	if unknown := lo.Without(lo.Uniq(names), known...); len(unknown) > 0 {
		return nil, xerrors.Errorf("unknown function(s) %v, want one of %v", unknown, known)
	}
	return lo.Filter(targets, func(t target, _ int) bool {
		return lo.Contains(names, t.Name)
	}), nil
}

// parseModes turns the --mode flag into the list of modes to sweep.
func parseModes(s string) ([]vmath.Mode, error) {
	switch s {
	case "fast":
		return []vmath.Mode{vmath.ModeFast}, nil
	case "except":
		return []vmath.Mode{vmath.ModeExceptionFaithful}, nil
	case "both", "":
		return []vmath.Mode{vmath.ModeFast, vmath.ModeExceptionFaithful}, nil
	default:
		return nil, xerrors.Errorf("unknown mode %q, want fast, except or both", s)
	}
}
