package benchmark

import (
	"fmt"
	"strings"
	"time"

	apperrors "ionbench/internal/errors"
)

// BytesPerMB converts byte counts to the megabytes shown in reports.
const BytesPerMB = 1024 * 1024

// API names the read API a benchmark exercises.
type API string

const (
	APISimpleIon   API = "simpleIon"
	APIIterator    API = "iterator"
	APINonBlocking API = "nonBlocking"
)

// APIs lists every API accepted on the command line, default first.
var APIs = []API{APISimpleIon, APIIterator, APINonBlocking}

// ParseAPI converts the --api value. An empty string selects simpleIon.
func ParseAPI(s string) (API, error) {
	if s == "" {
		return APISimpleIon, nil
	}
	for _, api := range APIs {
		if s == string(api) {
			return api, nil
		}
	}
	names := make([]string, len(APIs))
	for i, api := range APIs {
		names[i] = string(api)
	}
	return "", apperrors.NewInvalidArgumentError("--api", "invalid API option %q (supported: %s)", s, strings.Join(names, ", "))
}

// MeasurementConfig selects one execution variant of a load.
type MeasurementConfig struct {
	// CollectCycles keeps the garbage collector running during the variant.
	CollectCycles bool
	// ReturnRawValues skips wrapping decoded values into domain objects.
	ReturnRawValues bool
}

func (c MeasurementConfig) String() string {
	gc, values := "gc=off", "values=wrapped"
	if c.CollectCycles {
		gc = "gc=on"
	}
	if c.ReturnRawValues {
		values = "values=raw"
	}
	return gc + "," + values
}

// The three variants compared by the overhead decomposition.
var (
	ConfigWithGC    = MeasurementConfig{CollectCycles: true}
	ConfigWithoutGC = MeasurementConfig{}
	ConfigRawValues = MeasurementConfig{ReturnRawValues: true}
)

// TimingSample is the mean elapsed time of one variant.
type TimingSample struct {
	Config     MeasurementConfig `json:"-"`
	Variant    string            `json:"variant"`
	Iterations int               `json:"iterations"`
	Total      time.Duration     `json:"total_ns"`
	Mean       float64           `json:"mean_seconds"`
}

// NewTimingSample averages total over iterations.
func NewTimingSample(cfg MeasurementConfig, iterations int, total time.Duration) TimingSample {
	return TimingSample{
		Config:     cfg,
		Variant:    cfg.String(),
		Iterations: iterations,
		Total:      total,
		Mean:       total.Seconds() / float64(iterations),
	}
}

// OverheadReport holds the metrics of one read benchmark run.
// Times are in seconds, ratios in [0, 1], sizes in megabytes.
type OverheadReport struct {
	API        API    `json:"api"`
	Format     string `json:"format"`
	File       string `json:"file"`
	Iterations int    `json:"iterations"`
	Warmups    int    `json:"warmups"`

	FileSizeMB float64 `json:"file_size_mb"`

	TotalTime     float64 `json:"total_time"`     // variant A: gc on, wrapped values
	ExecutionTime float64 `json:"execution_time"` // variant B: gc off, wrapped values
	RawValueTime  float64 `json:"raw_value_time"` // variant C: gc off, raw values

	GCOverhead              float64 `json:"gc_overhead"`
	GCOverheadRatio         float64 `json:"gc_overhead_ratio"`
	ConversionOverhead      float64 `json:"conversion_overhead"`
	ConversionOverheadRatio float64 `json:"conversion_overhead_ratio"`

	MemoryPeakMB float64 `json:"memory_usage_peak_mb"`
	MemoryProbe  string  `json:"memory_probe,omitempty"`

	Samples []TimingSample `json:"samples,omitempty"`
}

// Decompose derives the overhead buckets from the three variant means.
// Negative differences, which only timing noise can produce, are clamped to zero,
// and ratios are kept within [0, 1].
func Decompose(withGC, withoutGC, rawValues float64) (gc, gcRatio, conversion, conversionRatio float64) {
	gc = max(0, withGC-withoutGC)
	conversion = max(0, withoutGC-rawValues)
	return gc, ratio(gc, withGC), conversion, ratio(conversion, withGC)
}

func ratio(part, total float64) float64 {
	if part <= 0 || total <= 0 {
		return 0
	}
	return min(1, part/total)
}

// String is a one-line summary used in logs.
func (r *OverheadReport) String() string {
	return fmt.Sprintf("%s total=%.3gs exec=%.3gs gc=%.3gs conversion=%.3gs peak=%.3gMB",
		r.File, r.TotalTime, r.ExecutionTime, r.GCOverhead, r.ConversionOverhead, r.MemoryPeakMB)
}
