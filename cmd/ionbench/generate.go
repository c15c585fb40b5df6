package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate random Ion data (not supported yet)",
		Long: `Generate random Ion data to use as input for the read and write commands.

This command is not supported yet; generate input data with another Ion tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Generate feature is not supported yet")
			return nil
		},
	}
}
