package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ionbench/internal/benchmark"
	"ionbench/internal/codec"
	"ionbench/internal/config"
	apperrors "ionbench/internal/errors"
	"ionbench/internal/memory"
	"ionbench/internal/metrics"
	"ionbench/internal/report"
	"ionbench/internal/telemetry"
)

// newRunnerFunc allows mocking in tests.
var newRunnerFunc = benchmark.NewRunner

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [--api <api>] [--warmups <int>] [--iterations <int>] <input_file>",
		Short: "Benchmark reading the given input file",
		Long: `Loads the input file repeatedly in three variants: with the garbage collector
running, with it switched off, and with it switched off while skipping the
wrapping of decoded values into domain objects. The mean times are subtracted
to estimate garbage collection and conversion overhead.

The cost of opening the file and creating the decoder is included in each timed
invocation, so use inputs that match the size of data a single loader handles in
practice to amortize that cost properly.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0 || args[0] == "":
				return apperrors.NewInvalidArgumentError("<input_file>", "input file is required")
			case len(args) > 1:
				return apperrors.NewInvalidArgumentError("<input_file>", "expected one input file, got %d arguments", len(args))
			}
			return nil
		},
		RunE: runRead,
	}

	flags := cmd.Flags()
	flags.String("api", string(benchmark.APISimpleIon), "The API to exercise (simpleIon, iterator, nonBlocking)")
	flags.IntP("warmups", "w", 10, "Number of benchmark warm-up iterations")
	flags.IntP("iterations", "i", 10, "Number of benchmark iterations")
	flags.String("format", "", "Input format (ion, json, yaml, cbor); detected from the file extension by default")
	flags.StringP("output", "o", string(report.OutputTable), "Report output (table, json)")
	flags.String("memory-probe", memory.ProbeHeap, "Memory figure to track (heap, rss)")
	flags.String("metrics-file", "", "Also write the results as Prometheus metrics to this file")
	bindFlags(flags, map[string]string{
		config.KeyAPI:         "api",
		config.KeyWarmups:     "warmups",
		config.KeyIterations:  "iterations",
		config.KeyFormat:      "format",
		config.KeyOutput:      "output",
		config.KeyMemoryProbe: "memory-probe",
		config.KeyMetricsFile: "metrics-file",
	})

	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	// 1. Validate arguments before touching the file
	api, err := benchmark.ParseAPI(viper.GetString(config.KeyAPI))
	if err != nil {
		return err
	}

	req := benchmark.Request{
		Path:       args[0],
		Iterations: viper.GetInt(config.KeyIterations),
		Warmups:    viper.GetInt(config.KeyWarmups),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	writer, err := report.NewWriter(viper.GetString(config.KeyOutput))
	if err != nil {
		return err
	}

	// 2. Resolve the loader and memory probe
	format, err := codec.ResolveFormat(viper.GetString(config.KeyFormat), req.Path)
	if err != nil {
		return err
	}
	loader, err := codec.NewLoader(format)
	if err != nil {
		return err
	}
	probe, err := memory.NewProbe(viper.GetString(config.KeyMemoryProbe))
	if err != nil {
		return err
	}

	runner, err := newRunnerFunc(api, benchmark.Options{
		Loader:         loader,
		Probe:          probe,
		SampleInterval: viper.GetDuration(config.KeyMemoryInterval),
	})
	if err != nil {
		return err
	}

	// 3. Measure
	result, err := runner.Run(cmd.Context(), req)
	if apperrors.IsNotImplemented(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Read with the %s API is not supported yet\n", api)
		return nil
	}
	if err != nil {
		return err
	}

	// 4. Export and print
	if path := viper.GetString(config.KeyMetricsFile); path != "" {
		if err := metrics.Export(path, result); err != nil {
			telemetry.LogError("Metrics export failed", err, "path", path)
			return err
		}
	}
	return writer.Write(cmd.OutOrStdout(), result)
}
