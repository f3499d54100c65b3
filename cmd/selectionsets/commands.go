// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/gomlx/selectionsets/weightsets"
	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/gomlx/selectionsets/weightsets/pipeline"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Runs a pipeline described in YAML and prints its results",
		ArgsUsage: "<pipeline.yaml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Print every set defined by the pipeline, not only the final ones"},
			&cli.IntFlag{Name: "max_values", Value: 8, Usage: "Maximum number of weights printed per set"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.Errorf("run requires exactly one pipeline file, got %d arguments", cmd.Args().Len())
			}
			p, err := pipeline.LoadFile(cmd.Args().First())
			if err != nil {
				return err
			}
			results, err := p.Run()
			if err != nil {
				return err
			}
			names := p.Leaves()
			if cmd.Bool("all") {
				names = p.Names()
			}
			fmt.Println(setsTable(names, results, int(cmd.Int("max_values"))))
			return nil
		},
	}
}

func nodesCommand() *cli.Command {
	return &cli.Command{
		Name:  "nodes",
		Usage: "Lists the sources and operations that can be used in a pipeline",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(nodesTable())
			return nil
		},
	}
}

// nodesTable lists the registered pipeline nodes, sources first.
func nodesTable() string {
	names := pipeline.List()
	sort.SliceStable(names, func(i, j int) bool {
		return pipeline.Lookup(names[i]).IsSource() && !pipeline.Lookup(names[j]).IsSource()
	})
	table := newTable("Node", "Inputs", "Parameters", "Description")
	for _, name := range names {
		node := pipeline.Lookup(name)
		params := xslices.Map(xslices.SortedKeys(node.Defaults), func(key string) string {
			return fmt.Sprintf("%s=%v", key, node.Defaults[key])
		})
		table.Row(name, fmt.Sprint(node.Inputs), strings.Join(params, " "), node.Description)
	}
	return table.String()
}

func kernelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "kernels",
		Usage: "Prints the easing kernels sampled at evenly spaced points in [0, 1]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "samples", Value: 5, Usage: "Number of points sampled, including 0 and 1"},
			&cli.IntFlag{Name: "steps", Value: 2, Usage: "Number of steps of the step kernel"},
			&cli.FloatFlag{Name: "exponent", Value: 2, Usage: "Exponent of the ease_in, ease_out and ease_in_out kernels"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table, err := kernelsTable(int(cmd.Int("samples")), int(cmd.Int("steps")), float32(cmd.Float("exponent")))
			if err != nil {
				return err
			}
			fmt.Println(table)
			return nil
		},
	}
}

// kernelsTable evaluates every easing kind over a ramp of numSamples weights.
func kernelsTable(numSamples, steps int, exponent float32) (string, error) {
	if numSamples < 2 {
		return "", errors.Errorf("at least 2 samples are needed, got %d", numSamples)
	}
	ts := xslices.Linspace[float32](0, 1, numSamples)
	headers := append([]string{"Kind"}, xslices.Map(ts, func(t float32) string { return fmt.Sprintf("%.3g", t) })...)
	table := newTable(headers...)
	ramp := weightsets.FromValues(ts...)
	for _, kind := range easing.KindValues() {
		eased, err := weightsets.Ease(ramp, kind, steps, exponent)
		if err != nil {
			return "", err
		}
		row := append([]string{kind.String()}, xslices.Map(eased.Values(), func(x float32) string { return fmt.Sprintf("%.4f", x) })...)
		table.Row(row...)
	}
	return table.String(), nil
}
