// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// selectionsets runs weight set pipelines and inspects the easing kernels from the command line.
//
// Examples:
//
//	selectionsets run pipeline.yaml
//	selectionsets kernels --samples=9
//	selectionsets plot --kind=ease_in --kind=ease_out --out=easing.png
//	selectionsets bench --op=ease --size=1000000 --iterations=200
//	SELECTIONSETS_CONFIG=sequential selectionsets bench --op=ripple
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/gomlx/selectionsets/weightsets"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"k8s.io/klog/v2"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "selectionsets",
		Usage: "Runs weight set pipelines and inspects easing kernels",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "v",
				Usage: "Logging verbosity level: 1 logs configuration and pipeline steps, 2 logs parallel splits",
			},
			&cli.StringFlag{
				Name: "config",
				Usage: "Engine configuration, e.g.: \"parallelism=4,min_parallel_size=8192\" or \"sequential\". " +
					"Defaults to $" + weightsets.SELECTIONSETS_CONFIG,
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			runCommand(),
			nodesCommand(),
			kernelsCommand(),
			plotCommand(),
			benchCommand(),
		},
	}
}

// setup configures klog and the engine from the global flags.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	if err := klogFlags.Set("v", strconv.Itoa(int(cmd.Int("v")))); err != nil {
		return ctx, errors.Wrap(err, "failed to set logging verbosity")
	}
	if config := cmd.String("config"); config != "" {
		cfg, err := weightsets.ParseConfig(config)
		if err != nil {
			return ctx, errors.WithMessage(err, "invalid --config")
		}
		weightsets.SetConfig(cfg)
	}
	return ctx, nil
}
