package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"ionbench/internal/benchmark"
)

const namespace = "ionbench"

var labels = []string{"api", "format", "file"}

// Metrics holds one gauge per report field, registered on a private registry
// so a CLI run never mixes in the default process collectors.
type Metrics struct {
	Registry *prometheus.Registry

	FileSize                *prometheus.GaugeVec
	TotalTime               *prometheus.GaugeVec
	ExecutionTime           *prometheus.GaugeVec
	RawValueTime            *prometheus.GaugeVec
	GCOverhead              *prometheus.GaugeVec
	GCOverheadRatio         *prometheus.GaugeVec
	ConversionOverhead      *prometheus.GaugeVec
	ConversionOverheadRatio *prometheus.GaugeVec
	MemoryPeak              *prometheus.GaugeVec
}

func newGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// NewMetrics creates and registers the report gauges
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		FileSize:                newGauge("file_size_megabytes", "Size of the benchmarked input file in megabytes"),
		TotalTime:               newGauge("total_seconds", "Mean load time with garbage collection and wrapped values"),
		ExecutionTime:           newGauge("execution_seconds", "Mean load time without garbage collection"),
		RawValueTime:            newGauge("raw_value_seconds", "Mean load time without garbage collection returning raw values"),
		GCOverhead:              newGauge("gc_overhead_seconds", "Load time attributed to garbage collection"),
		GCOverheadRatio:         newGauge("gc_overhead_ratio", "Garbage collection overhead as a fraction of total time"),
		ConversionOverhead:      newGauge("conversion_overhead_seconds", "Load time attributed to wrapping decoded values"),
		ConversionOverheadRatio: newGauge("conversion_overhead_ratio", "Conversion overhead as a fraction of total time"),
		MemoryPeak:              newGauge("memory_peak_megabytes", "Peak memory growth during the measurement in megabytes"),
	}

	m.Registry.MustRegister(
		m.FileSize,
		m.TotalTime,
		m.ExecutionTime,
		m.RawValueTime,
		m.GCOverhead,
		m.GCOverheadRatio,
		m.ConversionOverhead,
		m.ConversionOverheadRatio,
		m.MemoryPeak,
	)

	return m
}

// Record sets every gauge from the report.
func (m *Metrics) Record(r *benchmark.OverheadReport) {
	lv := []string{string(r.API), r.Format, r.File}

	m.FileSize.WithLabelValues(lv...).Set(r.FileSizeMB)
	m.TotalTime.WithLabelValues(lv...).Set(r.TotalTime)
	m.ExecutionTime.WithLabelValues(lv...).Set(r.ExecutionTime)
	m.RawValueTime.WithLabelValues(lv...).Set(r.RawValueTime)
	m.GCOverhead.WithLabelValues(lv...).Set(r.GCOverhead)
	m.GCOverheadRatio.WithLabelValues(lv...).Set(r.GCOverheadRatio)
	m.ConversionOverhead.WithLabelValues(lv...).Set(r.ConversionOverhead)
	m.ConversionOverheadRatio.WithLabelValues(lv...).Set(r.ConversionOverheadRatio)
	m.MemoryPeak.WithLabelValues(lv...).Set(r.MemoryPeakMB)
}

// WriteTextfile writes the registry in the text exposition format, for use
// with the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Export records r on a fresh registry and writes it to path.
func Export(path string, r *benchmark.OverheadReport) error {
	m := NewMetrics()
	m.Record(r)
	return m.WriteTextfile(path)
}
