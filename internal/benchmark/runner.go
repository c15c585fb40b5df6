package benchmark

import (
	"context"
	"fmt"
	"time"

	"ionbench/internal/codec"
	apperrors "ionbench/internal/errors"
	"ionbench/internal/memory"
	"ionbench/internal/telemetry"
)

// Runner defines the interface for running read benchmarks.
type Runner interface {
	Run(ctx context.Context, req Request) (*OverheadReport, error)
}

// Options configure the runner built by NewRunner.
type Options struct {
	Loader         codec.Loader
	Probe          memory.Probe
	SampleInterval time.Duration
}

// NewRunner returns the Runner for api. APIs without an implementation yield a
// Runner whose Run reports ErrNotImplemented.
func NewRunner(api API, opts Options) (Runner, error) {
	switch api {
	case APISimpleIon:
		if opts.Loader == nil {
			return nil, fmt.Errorf("runner for %s needs a loader", api)
		}
		return &SimpleRunner{
			Loader:         opts.Loader,
			Probe:          opts.Probe,
			SampleInterval: opts.SampleInterval,
		}, nil
	case APIIterator, APINonBlocking:
		return &unsupportedRunner{api: api}, nil
	default:
		return nil, apperrors.NewInvalidArgumentError("--api", "invalid API option %q", api)
	}
}

// SimpleRunner benchmarks loading a whole file into memory in one call.
type SimpleRunner struct {
	Loader         codec.Loader
	Probe          memory.Probe
	SampleInterval time.Duration
}

func (r *SimpleRunner) Run(ctx context.Context, req Request) (*OverheadReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := &Timer{
		Load: func(path string, cfg MeasurementConfig) error {
			_, err := codec.Load(path, r.Loader, cfg.ReturnRawValues)
			return err
		},
		Probe:          r.Probe,
		SampleInterval: r.SampleInterval,
	}

	telemetry.LogInfo("Starting read benchmark",
		"api", APISimpleIon,
		"format", r.Loader.Format(),
		"file", req.Path,
		"iterations", req.Iterations,
		"warmups", req.Warmups)

	report, err := timer.Measure(req)
	if err != nil {
		return nil, err
	}
	report.API = APISimpleIon
	report.Format = string(r.Loader.Format())

	telemetry.LogInfo("Read benchmark finished", "summary", report.String())
	return report, nil
}

// unsupportedRunner stands in for read APIs that are not available yet.
type unsupportedRunner struct {
	api API
}

func (r *unsupportedRunner) Run(ctx context.Context, req Request) (*OverheadReport, error) {
	return nil, fmt.Errorf("read with the %s API: %w", r.api, apperrors.ErrNotImplemented)
}
