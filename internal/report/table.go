package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ionbench/internal/benchmark"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// TableWriter renders the report as a single bordered grid.
type TableWriter struct{}

func (tw *TableWriter) Write(w io.Writer, r *benchmark.OverheadReport) error {
	_, err := fmt.Fprintln(w, Render(r))
	return err
}

// Render returns the grid for r: one header row and one value row.
func Render(r *benchmark.OverheadReport) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(Columns...).
		Row(Cells(r)...)
	return t.Render()
}
