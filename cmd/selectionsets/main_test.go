// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/selectionsets/weightsets"
	"github.com/gomlx/selectionsets/weightsets/easing"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsTable(t *testing.T) {
	results := map[string]*weightsets.WeightSet{
		"ramp":  weightsets.FromValues(0, 0.5, 1),
		"empty": must.M1(weightsets.New(0)),
	}
	table := setsTable([]string{"ramp", "empty"}, results, 2)
	assert.Contains(t, table, "ramp")
	assert.Contains(t, table, "0 0.5 ...")
	assert.Contains(t, table, "empty")

	assert.Equal(t, "0 0.5 1", formatValues(results["ramp"], 3))
	assert.Equal(t, "", formatValues(results["empty"], 3))
}

func TestNodesTable(t *testing.T) {
	table := nodesTable()
	for _, text := range []string{"ramp", "remap_to_range", "ripples=4", "up_and_down=true"} {
		assert.Contains(t, table, text)
	}
}

func TestKernelsTable(t *testing.T) {
	table := must.M1(kernelsTable(3, 2, 2))
	for _, kind := range easing.KindValues() {
		assert.Contains(t, table, kind.String())
	}
	assert.Contains(t, table, "0.2500") // ease_in at 0.5.
	_, err := kernelsTable(1, 2, 2)
	assert.Error(t, err)
}

func TestPlotKernels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "easing.png")
	kinds := []easing.Kind{easing.EaseIn, easing.Step}
	require.NoError(t, plotKernels(kinds, easing.DefaultParams(), path, false))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Refuses to overwrite, unless asked.
	assert.Error(t, plotKernels(kinds, easing.DefaultParams(), path, false))
	assert.NoError(t, plotKernels(kinds, easing.DefaultParams(), path, true))
}

func TestBenchmark(t *testing.T) {
	for op := range benchOps {
		result, err := benchmark(context.Background(), op, 100, 3, 1, io.Discard)
		require.NoErrorf(t, err, "op %q", op)
		assert.Equal(t, 3, result.iterations)
		assert.Equal(t, 200, result.float16Size)
		assert.Contains(t, result.String(), op)
	}

	_, err := benchmark(context.Background(), "fft", 100, 3, 1, io.Discard)
	assert.Error(t, err)
	_, err = benchmark(context.Background(), "ease", 100, 0, 1, io.Discard)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = benchmark(ctx, "ease", 100, 3, 1, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
size: 4
sources: [{name: r, kind: ramp}]
steps: [{op: one_minus, inputs: [r], output: inverted}]
`), 0o644))
	previous := weightsets.CurrentConfig()
	defer weightsets.SetConfig(previous)

	app := newApp()
	require.NoError(t, app.Run(context.Background(), []string{"selectionsets", "--config=sequential", "run", "--all", path}))
	assert.Equal(t, 0, weightsets.CurrentConfig().MaxParallelism)

	assert.Error(t, newApp().Run(context.Background(), []string{"selectionsets", "run"}))
	assert.Error(t, newApp().Run(context.Background(), []string{"selectionsets", "--config=bogus", "nodes"}))
}
