// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/selectionsets/pkg/support/xslices"
	"github.com/gomlx/selectionsets/weightsets"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Bold(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
)

func newTable(headers ...string) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

// formatValues lists up to maxValues weights.
func formatValues(ws *weightsets.WeightSet, maxValues int) string {
	values := ws.Values()
	truncated := len(values) > maxValues
	if truncated {
		values = values[:maxValues]
	}
	parts := xslices.Map(values, func(x float32) string { return fmt.Sprintf("%.4g", x) })
	if truncated {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}

// setsTable lists the statistics and the first weights of each named set.
func setsTable(names []string, results map[string]*weightsets.WeightSet, maxValues int) string {
	table := newTable("Name", "Size", "Min", "Max", "Mean", "Weights")
	for _, name := range names {
		ws := results[name]
		row := []string{name, fmt.Sprint(ws.Size()), "-", "-", "-", formatValues(ws, maxValues)}
		if ws.Size() > 0 {
			lo, hi, _ := weightsets.Range(ws)
			mean, _ := weightsets.Mean(ws)
			row[2], row[3], row[4] = fmt.Sprintf("%.4g", lo), fmt.Sprintf("%.4g", hi), fmt.Sprintf("%.4g", mean)
		}
		table.Row(row...)
	}
	return table.String()
}
