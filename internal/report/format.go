// Package report formats read benchmark results for display.
package report

import (
	"fmt"
	"io"

	"ionbench/internal/benchmark"
	apperrors "ionbench/internal/errors"
)

// Columns are the report headers, in display order.
var Columns = []string{
	"file_size (MB)",
	"total_time (s)",
	"execution_time (s)",
	"garbage_collection_time (s)",
	"garbage_collection_time/total_time (%)",
	"conversion_time (s)",
	"conversion_time/total_time (%)",
	"memory_usage_peak (MB)",
}

// Output names a report sink.
type Output string

const (
	OutputTable Output = "table"
	OutputJSON  Output = "json"
)

// Writer renders a report to w.
type Writer interface {
	Write(w io.Writer, r *benchmark.OverheadReport) error
}

// NewWriter returns the Writer for an output name.
func NewWriter(output string) (Writer, error) {
	switch Output(output) {
	case OutputTable, "":
		return &TableWriter{}, nil
	case OutputJSON:
		return &JSONWriter{Indent: "  "}, nil
	default:
		return nil, apperrors.NewInvalidArgumentError("--output", "unknown output %q (supported: %s, %s)", output, OutputTable, OutputJSON)
	}
}

// Cells formats a report into one display cell per column.
func Cells(r *benchmark.OverheadReport) []string {
	return []string{
		Scientific(r.FileSizeMB),
		Scientific(r.TotalTime),
		Scientific(r.ExecutionTime),
		Overhead(r.GCOverhead),
		OverheadPercent(r.GCOverhead, r.GCOverheadRatio),
		Overhead(r.ConversionOverhead),
		OverheadPercent(r.ConversionOverhead, r.ConversionOverheadRatio),
		Scientific(r.MemoryPeakMB),
	}
}

// Scientific formats v with two fractional digits in scientific notation, e.g. 1.00e+01.
func Scientific(v float64) string {
	return fmt.Sprintf("%.2e", v)
}

// Percent formats a ratio as a percentage with two fractional digits, e.g. 12.50%.
func Percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// Overhead formats an overhead time, using a bare 0 unless it is strictly positive.
func Overhead(v float64) string {
	if v > 0 {
		return Scientific(v)
	}
	return "0"
}

// OverheadPercent formats an overhead ratio, using 0% unless the overhead is strictly positive.
func OverheadPercent(overhead, ratio float64) string {
	if overhead > 0 {
		return Percent(ratio)
	}
	return "0%"
}
