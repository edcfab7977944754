package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/exascience/torre/analysis"
	"github.com/exascience/torre/component"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderComponents writes the components as a table to w.
func RenderComponents(w io.Writer, components []component.Component) {
	if len(components) == 0 {
		fmt.Fprintln(w, "\n[INFO] No components registered.")
		return
	}
	t := newTable("NAME", "TYPE", "PRIORITY")
	for _, c := range components {
		t.Row(c.Name, c.Type, strconv.Itoa(c.Priority))
	}
	fmt.Fprintf(w, "\n--- Components (%d) ---\n%s\n", len(components), t)
}

// RenderSummaries writes the result of an analysis as a table to w.
func RenderSummaries(w io.Writer, summaries []analysis.Summary) {
	t := newTable("ALGORITHM", "KEY", "N", "TRIALS", "MEAN", "SD", "MIN", "MAX", "N(N-1)/2")
	for _, s := range summaries {
		t.Row(
			string(s.Algorithm),
			s.Ordering.String(),
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Trials),
			strconv.FormatFloat(s.Mean, 'f', 2, 64),
			strconv.FormatFloat(s.StdDev, 'f', 2, 64),
			strconv.FormatFloat(s.Min, 'f', 0, 64),
			strconv.FormatFloat(s.Max, 'f', 0, 64),
			strconv.FormatUint(s.Quadratic, 10),
		)
	}
	fmt.Fprintln(w, t)
}
