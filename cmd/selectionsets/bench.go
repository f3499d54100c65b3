// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

// benchOps are the operations that can be benchmarked, applied to a random set in [0, 1].
var benchOps = map[string]func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error){
	"add_scalar": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.AddScalar(ws, 0.5)
	},
	"multiply": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.Multiply(ws, ws)
	},
	"divide_scalar_by": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.DivideScalarBy(1, ws)
	},
	"lerp_by_set": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.LerpBySet(ws, ws, ws)
	},
	"ease": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.Ease(ws, easing.EaseInOut, 2, 3)
	},
	"ripple": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.RemapRipple(ws, 4, true)
	},
	"remap_to_range": func(ws *weightsets.WeightSet) (*weightsets.WeightSet, error) {
		return weightsets.RemapToRange(ws, -1, 1)
	},
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Measures the throughput of an operation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "op", Value: "ease",
				Usage: fmt.Sprintf("Operation to benchmark, one of %q", xslices.SortedKeys(benchOps))},
			&cli.IntFlag{Name: "size", Value: 1 << 20, Usage: "Number of weights in the set"},
			&cli.IntFlag{Name: "iterations", Value: 100, Usage: "Number of times the operation is run"},
			&cli.IntFlag{Name: "seed", Value: 0, Usage: "Seed used to generate the input weights"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := benchmark(ctx, cmd.String("op"), int(cmd.Int("size")), int(cmd.Int("iterations")),
				uint64(cmd.Int("seed")), os.Stderr)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}

// benchResult summarizes a benchmark.
type benchResult struct {
	op               string
	size, iterations int
	elapsed          time.Duration
	config           weightsets.Config
	float16Size      int
}

// throughput in bytes of input weights processed per second.
func (r benchResult) throughput() float64 {
	bytes := float64(r.size) * float64(r.iterations) * 4
	return bytes / r.elapsed.Seconds()
}

func (r benchResult) String() string {
	table := newTable("Op", "Weights", "Iterations", "Time/op", "Throughput", "As float16", "Parallelism")
	perOp := r.elapsed / time.Duration(max(r.iterations, 1))
	table.Row(r.op, humanize.Comma(int64(r.size)), humanize.Comma(int64(r.iterations)), perOp.String(),
		humanize.Bytes(uint64(r.throughput()))+"/s", humanize.Bytes(uint64(r.float16Size)),
		fmt.Sprint(r.config.MaxParallelism))
	return table.String()
}

// benchmark runs op over a random set of the given size, showing a progress bar on progressOut.
func benchmark(ctx context.Context, op string, size, iterations int, seed uint64, progressOut io.Writer) (benchResult, error) {
	fn, found := benchOps[op]
	if !found {
		return benchResult{}, errors.Errorf("unknown op %q for benchmark, valid values are %q", op, xslices.SortedKeys(benchOps))
	}
	if iterations <= 0 {
		return benchResult{}, errors.Errorf("iterations must be > 0, got %d", iterations)
	}
	input, err := weightsets.New(size)
	if err != nil {
		return benchResult{}, err
	}
	input = must.M1(weightsets.Randomize(input, weightsets.NewRandomStream(seed), 0, 1))

	bar := progressbar.NewOptions(iterations,
		progressbar.OptionSetDescription(op),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("ops"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	result := benchResult{op: op, size: size, iterations: iterations, config: weightsets.CurrentConfig()}
	var output *weightsets.WeightSet
	start := time.Now()
	for range iterations {
		if err := ctx.Err(); err != nil {
			return benchResult{}, errors.WithStack(err)
		}
		output, err = fn(input)
		if err != nil {
			return benchResult{}, err
		}
		_ = bar.Add(1)
	}
	result.elapsed = time.Since(start)
	_ = bar.Finish()
	result.float16Size = 2 * len(output.Float16())
	return result, nil
}
