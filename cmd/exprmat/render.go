package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/born-ml/exprmat/matrix"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// renderMatrix draws d as a bordered grid.
func renderMatrix[T matrix.Numeric](d *matrix.Dense[T]) string {
	if !d.IsBound() {
		return "<unbound>"
	}
	rows := make([][]string, d.Rows())
	for r := range rows {
		vals, _ := d.Row(r)
		cells := make([]string, len(vals))
		for c, v := range vals {
			cells[c] = fmt.Sprint(v)
		}
		rows[r] = cells
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return numberStyle }).
		Rows(rows...).
		String()
}

// renderResults draws the summary table for a run.
func renderResults(results []Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("SCENARIO", "KIND", "DTYPE", "SHAPE", "OUT(0,0)", "ELAPSED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, res := range results {
		t.Row(res.Name, res.Kind, res.DType.String(), res.Shape.String(), res.Sample, res.Elapsed.String())
	}
	return t.String()
}

// printReport writes the matrices of printed scenarios followed by the
// summary table.
func printReport(w io.Writer, results []Result) {
	for _, res := range results {
		if res.Before == "" && res.After == "" {
			continue
		}
		fmt.Fprintf(w, "%s\nbefore:\n%s\nafter:\n%s\n\n", res.Name, res.Before, res.After)
	}
	fmt.Fprintln(w, renderResults(results))
}
