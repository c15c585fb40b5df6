package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	apperrors "ionbench/internal/errors"
	"ionbench/internal/memory"
	"ionbench/internal/telemetry"
)

// LoadFunc loads the file at path once under the given configuration.
type LoadFunc func(path string, cfg MeasurementConfig) error

// Request describes one read benchmark.
type Request struct {
	Path       string
	Iterations int
	Warmups    int
}

// Validate checks the request arguments. It does not touch the file system.
func (r Request) Validate() error {
	if r.Path == "" {
		return apperrors.NewInvalidArgumentError("<input_file>", "input file is required")
	}
	if r.Iterations < 1 {
		return apperrors.NewInvalidArgumentError("--iterations", "must be at least 1, got %d", r.Iterations)
	}
	if r.Warmups < 0 {
		return apperrors.NewInvalidArgumentError("--warmups", "must not be negative, got %d", r.Warmups)
	}
	return nil
}

// Timer runs a load under the three measurement variants and decomposes the
// elapsed time into garbage collection and value conversion overheads.
type Timer struct {
	Load LoadFunc

	// Probe and SampleInterval configure peak memory sampling. A nil Probe disables it.
	Probe          memory.Probe
	SampleInterval time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// variant is a load bound to its measurement configuration.
type variant struct {
	cfg MeasurementConfig
	run func() error
}

// Measure runs the benchmark described by req and returns the assembled report.
// The variants run sequentially: all warm-ups first, then the timed iterations.
func (t *Timer) Measure(req Request) (*OverheadReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if t.Load == nil {
		return nil, fmt.Errorf("timer has no load function")
	}

	size, err := fileSize(req.Path)
	if err != nil {
		return nil, err
	}

	variants := make([]variant, 0, 3)
	for _, cfg := range []MeasurementConfig{ConfigWithGC, ConfigWithoutGC, ConfigRawValues} {
		cfg := cfg
		variants = append(variants, variant{
			cfg: cfg,
			run: func() error { return t.Load(req.Path, cfg) },
		})
	}

	samples, stats, err := t.runAll(variants, req)
	if err != nil {
		return nil, err
	}

	a, b, c := samples[0], samples[1], samples[2]
	gc, gcRatio, conversion, conversionRatio := Decompose(a.Mean, b.Mean, c.Mean)

	report := &OverheadReport{
		File:                    req.Path,
		Iterations:              req.Iterations,
		Warmups:                 req.Warmups,
		FileSizeMB:              float64(size) / BytesPerMB,
		TotalTime:               a.Mean,
		ExecutionTime:           b.Mean,
		RawValueTime:            c.Mean,
		GCOverhead:              gc,
		GCOverheadRatio:         gcRatio,
		ConversionOverhead:      conversion,
		ConversionOverheadRatio: conversionRatio,
		MemoryPeakMB:            float64(stats.Growth()) / BytesPerMB,
		Samples:                 samples,
	}
	if t.Probe != nil {
		report.MemoryProbe = t.Probe.Name()
	}
	return report, nil
}

// runAll warms every variant up, then times them in order. Memory is sampled
// over the timed iterations of the first variant only, the one running with
// the collector enabled.
func (t *Timer) runAll(variants []variant, req Request) ([]TimingSample, memory.Stats, error) {
	var stats memory.Stats

	// Warm up
	for _, v := range variants {
		if _, err := t.timeVariant(v, req.Warmups); err != nil {
			return nil, stats, fmt.Errorf("warm-up (%s) failed: %w", v.cfg, err)
		}
	}

	// Iterations
	samples := make([]TimingSample, 0, len(variants))
	for i, v := range variants {
		var sampler *memory.Sampler
		if i == 0 && t.Probe != nil {
			sampler = memory.NewSampler(t.Probe, t.SampleInterval)
		}

		elapsed, err := t.timeSampled(v, req.Iterations, sampler)
		if sampler != nil {
			var sampleErr error
			stats, sampleErr = sampler.Stop()
			if sampleErr != nil {
				telemetry.LogWarn("Memory sampling failed", "probe", t.Probe.Name(), "error", sampleErr)
			}
		}
		if err != nil {
			return nil, stats, fmt.Errorf("measurement (%s) failed: %w", v.cfg, err)
		}

		sample := NewTimingSample(v.cfg, req.Iterations, elapsed)
		telemetry.LogDebug("Variant measured", "variant", sample.Variant, "iterations", sample.Iterations, "mean_seconds", sample.Mean)
		samples = append(samples, sample)
	}
	return samples, stats, nil
}

func (t *Timer) timeVariant(v variant, n int) (time.Duration, error) {
	return t.timeSampled(v, n, nil)
}

// timeSampled runs v n times with the collector set per v.cfg and returns the
// elapsed wall time. A non-nil sampler is started once the collector is set.
//
// With the collector off nothing is reclaimed, so each run is timed on its own
// and the heap is collected between runs, outside the timed span.
func (t *Timer) timeSampled(v variant, n int, sampler *memory.Sampler) (time.Duration, error) {
	if n == 0 {
		return 0, nil
	}

	restore := setCollector(v.cfg.CollectCycles)
	defer restore()

	now := t.Now
	if now == nil {
		now = time.Now
	}

	if sampler != nil {
		sampler.Start()
	}

	if v.cfg.CollectCycles {
		start := now()
		for i := 0; i < n; i++ {
			if err := v.run(); err != nil {
				return 0, err
			}
		}
		return now().Sub(start), nil
	}

	var total time.Duration
	for i := 0; i < n; i++ {
		start := now()
		err := v.run()
		total += now().Sub(start)
		if err != nil {
			return 0, err
		}
		runtime.GC()
	}
	return total, nil
}

// setCollector switches the garbage collector on or off and returns a func
// restoring the previous setting. Garbage left by earlier work is collected
// first so each variant starts from the same heap.
func setCollector(enabled bool) (restore func()) {
	runtime.GC()

	prev := debug.SetGCPercent(-1)
	if enabled {
		percent := prev
		if percent < 0 {
			percent = 100
		}
		debug.SetGCPercent(percent)
	}
	return func() { debug.SetGCPercent(prev) }
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(path, err)
	}
	if info.IsDir() {
		return 0, apperrors.NewInvalidInputError(path, fmt.Errorf("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(path, err)
	}
	f.Close()

	return info.Size(), nil
}
