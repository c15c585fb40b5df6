package report

import (
	"io"

	"github.com/goccy/go-json"

	"ionbench/internal/benchmark"
)

// JSONWriter encodes the formatted cells together with the raw report.
type JSONWriter struct {
	Indent string
}

type jsonCell struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

type jsonDocument struct {
	Table  []jsonCell                `json:"table"`
	Report *benchmark.OverheadReport `json:"report"`
}

func (jw *JSONWriter) Write(w io.Writer, r *benchmark.OverheadReport) error {
	cells := Cells(r)
	doc := jsonDocument{
		Table:  make([]jsonCell, len(Columns)),
		Report: r,
	}
	for i, col := range Columns {
		doc.Table[i] = jsonCell{Column: col, Value: cells[i]}
	}

	enc := json.NewEncoder(w)
	if jw.Indent != "" {
		enc.SetIndent("", jw.Indent)
	}
	return enc.Encode(doc)
}
