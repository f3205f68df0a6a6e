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
	"context"
	"math"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	vmath "github.com/ajroetker/vmath/hwy/contrib/math"
	"github.com/ajroetker/vmath/hwy/contrib/workerpool"
	"github.com/ajroetker/vmath/internal/ulp"
)

// checkEvery is how many reference evaluations run between context checks.
const checkEvery = 1024

type sweepConfig struct {
	Targets []target
	Modes   []vmath.Mode
	Points  int
	Jobs    int
	Pool    *workerpool.Pool
}

// result is the worst error found on one interval for one function and mode.
type result struct {
	Target   string
	Mode     vmath.Mode
	Interval interval
	Points   int
	MaxULP   float64
	At       float64
	Got      float64
	Bound    float64
}

func (r result) exceeds() bool { return r.MaxULP > r.Bound }

// runSweep evaluates every (target, mode, interval) combination and returns
// the results in table order. Intervals whose worst error exceeds the
// target's bound are reported together in the returned *multierror.Error;
// the results are returned in either case.
func runSweep(ctx context.Context, cfg sweepConfig) ([]result, error) {
	if cfg.Points < 2 {
		return nil, xerrors.Errorf("need at least 2 points per interval, got %d", cfg.Points)
	}

	type job struct {
		t    target
		mode vmath.Mode
		iv   interval
	}
	var jobs []job
	for _, t := range cfg.Targets {
		for _, mode := range cfg.Modes {
			for _, iv := range t.Domain {
				if iv.Log && (iv.Lo <= 0 || iv.Hi <= iv.Lo) {
					return nil, xerrors.Errorf("%s: log interval %v must be positive and increasing", t.Name, iv)
				}
				jobs = append(jobs, job{t, mode, iv})
			}
		}
	}

	results := make([]result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for i, j := range jobs {
		g.Go(func() error {
			r, err := sweepInterval(ctx, cfg.Pool, j.t, j.mode, j.iv, cfg.Points)
			if err != nil {
				return xerrors.Errorf("%s/%s on %v: %w", j.t.Name, j.mode, j.iv, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var errs *multierror.Error
	for _, r := range results {
		if r.exceeds() {
			errs = multierror.Append(errs, xerrors.Errorf("%s/%s on %v: %.3f ULP at %g (got %g) exceeds bound %.2f",
				r.Target, r.Mode, r.Interval, r.MaxULP, r.At, r.Got, r.Bound))
		}
	}
	return results, errs.ErrorOrNil()
}

func sweepInterval(ctx context.Context, pool *workerpool.Pool, t target, mode vmath.Mode, iv interval, n int) (result, error) {
	f := vmath.FuncsFor(mode)
	r := result{Target: t.Name, Mode: mode, Interval: iv, Points: n, Bound: t.Bound}

	switch t.Bits {
	case 32:
		in := samples32(iv, n)
		out := make([]float32, len(in))
		t.eval32(f, pool, in, out)
		for i, x := range in {
			if i%checkEvery == 0 && ctx.Err() != nil {
				return r, ctx.Err()
			}
			if d := ulp.Ulp32(out[i], t.ref32(float64(x))); d > r.MaxULP {
				r.MaxULP, r.At, r.Got = d, float64(x), float64(out[i])
			}
		}
	case 64:
		in := samples64(iv, n)
		out := make([]float64, len(in))
		t.eval64(f, pool, in, out)
		for i, x := range in {
			if i%checkEvery == 0 && ctx.Err() != nil {
				return r, ctx.Err()
			}
			if d := ulp.Ulp64(out[i], t.ref64(x)); d > r.MaxULP {
				r.MaxULP, r.At, r.Got = d, x, out[i]
			}
		}
	default:
		return r, xerrors.Errorf("unsupported precision %d", t.Bits)
	}
	return r, nil
}

// samples32 returns n binary32 points covering iv, endpoints included.
// Rounding can produce duplicates on narrow intervals.
func samples32(iv interval, n int) []float32 {
	out := make([]float32, n)
	if iv.Log {
		lo, hi := math.Float32bits(float32(iv.Lo)), math.Float32bits(float32(iv.Hi))
		span := float64(hi - lo)
		for i := range out {
			out[i] = math.Float32frombits(lo + uint32(span*float64(i)/float64(n-1)))
		}
		return out
	}
	for i := range out {
		out[i] = float32(iv.Lo + (iv.Hi-iv.Lo)*float64(i)/float64(n-1))
	}
	return out
}

// samples64 is samples32 for binary64.
func samples64(iv interval, n int) []float64 {
	out := make([]float64, n)
	if iv.Log {
		lo, hi := math.Float64bits(iv.Lo), math.Float64bits(iv.Hi)
		span := float64(hi - lo)
		for i := range out {
			out[i] = math.Float64frombits(lo + uint64(span*float64(i)/float64(n-1)))
		}
		out[n-1] = iv.Hi
		return out
	}
	for i := range out {
		out[i] = iv.Lo + (iv.Hi-iv.Lo)*float64(i)/float64(n-1)
	}
	return out
}
