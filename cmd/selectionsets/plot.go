// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/gomlx/selectionsets/pkg/support/fsutil"
	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"
)

func plotCommand() *cli.Command {
	return &cli.Command{
		Name:  "plot",
		Usage: "Plots easing kernels to an image file (the format is given by the extension: png, svg, pdf, ...)",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "kind", Usage: "Easing kinds to plot, can be repeated. Defaults to all kinds"},
			&cli.StringFlag{Name: "out", Value: "easing.png", Usage: "Output file"},
			&cli.BoolFlag{Name: "force", Usage: "Overwrite the output file if it exists"},
			&cli.IntFlag{Name: "steps", Value: 4, Usage: "Number of steps of the step kernel"},
			&cli.FloatFlag{Name: "exponent", Value: 2, Usage: "Exponent of the ease_in, ease_out and ease_in_out kernels"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kinds := easing.KindValues()
			if names := cmd.StringSlice("kind"); len(names) > 0 {
				kinds = make([]easing.Kind, len(names))
				for ii, name := range names {
					var err error
					if kinds[ii], err = easing.KindString(name); err != nil {
						return errors.Errorf("unknown easing kind %q, valid kinds are %q", name, easing.KindStrings())
					}
				}
			}
			out := cmd.String("out")
			params := easing.Params{Steps: int(cmd.Int("steps")), Exponent: cmd.Float("exponent")}
			if err := plotKernels(kinds, params, out, cmd.Bool("force")); err != nil {
				return err
			}
			fmt.Printf("Plot saved to %q\n", out)
			return nil
		},
	}
}

// plotKernels saves a plot of the easing kinds to path.
func plotKernels(kinds []easing.Kind, params easing.Params, path string, overwrite bool) error {
	exists, err := fsutil.FileExists(path)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return errors.Errorf("output file %q already exists, use --force to overwrite it", path)
	}
	if err := fsutil.CreateParentDir(path); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Easing kernels"
	p.X.Label.Text = "t"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Label.Text = "f(t)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true
	for ii, kind := range kinds {
		kernel := easing.Lookup(kind)
		fn := plotter.NewFunction(func(t float64) float64 { return kernel(t, params) })
		fn.Samples = 500
		fn.Color = plotutil.Color(ii)
		fn.Dashes = plotutil.Dashes(ii / len(plotutil.DefaultColors))
		p.Add(fn)
		p.Legend.Add(kind.String(), fn)
	}
	klog.V(1).Infof("plotting %d kernels to %q", len(kinds), path)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", path)
	}
	return nil
}
