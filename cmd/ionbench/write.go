package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write",
		Short: "Benchmark writing the given input file (not supported yet)",
		Long: `Benchmark writing the given input file to the given output format(s).
Write instructions would be generated from the input file during setup and kept
in memory, so that writing is measured in isolation from reading.

This command is not supported yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Write feature is not supported yet")
			return nil
		},
	}
}
