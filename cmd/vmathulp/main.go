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

// Command vmathulp measures the accuracy of the vector math functions against
// high-precision references.
//
// Usage:
//
//	vmathulp list
//	vmathulp sweep                          # every function, both modes
//	vmathulp sweep exp sin --mode except -n 100000
//	vmathulp sweep log1p --workers 8 --jobs 2
//
// For each function, mode and input interval, sweep reports the largest
// error in ULP and where it occurred. It exits non-zero if any interval
// exceeds the function's documented bound.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/vmath/hwy"
	"github.com/ajroetker/vmath/hwy/contrib/workerpool"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vmathulp",
		Short:         "Measure the accuracy of the vector math functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newSweepCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the functions, their bounds and default sweep intervals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeList(cmd.OutOrStdout())
		},
	}
}

func writeList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tTYPE\tBOUND (ULP)\tINTERVALS")
	for _, t := range targets {
		ivs := lo.Map(t.Domain, func(iv interval, _ int) string { return iv.String() })
		fmt.Fprintf(tw, "%s\tfloat%d\t%.2f\t%s\n", t.Name, t.Bits, t.Bound, strings.Join(ivs, " "))
	}
	return tw.Flush()
}

func newSweepCmd() *cobra.Command {
	var (
		mode    string
		points  int
		workers int
		jobs    int
	)
	cmd := &cobra.Command{
		Use:       "sweep [function...]",
		Short:     "Sweep functions over their default intervals and report the worst ULP error",
		ValidArgs: targetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectTargets(args)
			if err != nil {
				return err
			}
			modes, err := parseModes(mode)
			if err != nil {
				return err
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target %s, %d lanes of float32, hardware FMA %v\n",
				hwy.CurrentName(), hwy.MaxLanes[float32](), hwy.HasFMA())
			results, err := runSweep(cmd.Context(), sweepConfig{
				Targets: selected,
				Modes:   modes,
				Points:  points,
				Jobs:    jobs,
				Pool:    pool,
			})
			if results != nil {
				if werr := writeResults(out, results); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&mode, "mode", "both", "Mode to sweep: fast, except or both")
	flags.IntVarP(&points, "points", "n", 1<<14, "Points per interval")
	flags.IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "Worker pool size for the bulk evaluation")
	flags.IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "Intervals checked concurrently")
	return cmd
}

func writeResults(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tMODE\tINTERVAL\tPOINTS\tMAX ULP\tAT\tBOUND\tSTATUS")
	for _, r := range results {
		status := "ok"
		if r.exceeds() {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%.3f\t%g\t%.2f\t%s\n",
			r.Target, r.Mode, r.Interval, r.Points, r.MaxULP, r.At, r.Bound, status)
	}
	return tw.Flush()
}
