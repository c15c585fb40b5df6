package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ionbench/internal/config"
	apperrors "ionbench/internal/errors"
	"ionbench/internal/telemetry"
)

var exit = os.Exit

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "ionbench",
		Short: "A repeatable benchmark tool for Ion data",
		Long: `ionbench times loading structured data files and splits the elapsed time
into garbage collection overhead, value conversion overhead and pure parsing
time, together with the peak memory used while measuring.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cfgFile); err != nil {
				return err
			}
			if err := config.ValidateConfig(); err != nil {
				return err
			}
			telemetry.InitLogger(viper.GetBool(config.KeyVerbose), viper.GetString(config.KeyLogFile))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./ionbench.yaml)")
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("log-file", "", "Also append JSON logs to this file")
	bindFlags(flags, map[string]string{
		config.KeyVerbose: "verbose",
		config.KeyLogFile: "log-file",
	})

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return apperrors.NewInvalidArgumentError("", "%v", err)
	})

	cmd.AddCommand(
		newReadCmd(),
		newWriteCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)
	return cmd
}

// bindFlags binds each config key to the named flag so flags override env and file values.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		stderr := rootCmd.ErrOrStderr()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if apperrors.IsInvalidArgument(err) {
			fmt.Fprintln(stderr, "Run 'ionbench --help' for usage.")
		}
		exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for usage errors, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case apperrors.IsInvalidArgument(err):
		return 2
	default:
		return 1
	}
}
