// Package config loads ionbench settings from flags, environment, an optional
// config file and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyAPI            = "api"
	KeyWarmups        = "warmups"
	KeyIterations     = "iterations"
	KeyFormat         = "format"
	KeyOutput         = "output"
	KeyMemoryProbe    = "memory.probe"
	KeyMemoryInterval = "memory.interval"
	KeyMetricsFile    = "metrics_file"
	KeyVerbose        = "verbose"
	KeyLogFile        = "log_file"
)

// EnvPrefix is prepended to environment overrides, e.g. IONBENCH_ITERATIONS.
const EnvPrefix = "IONBENCH"

// SetDefaults registers the built-in defaults.
func SetDefaults() {
	viper.SetDefault(KeyAPI, "simpleIon")
	viper.SetDefault(KeyWarmups, 10)
	viper.SetDefault(KeyIterations, 10)
	viper.SetDefault(KeyFormat, "")
	viper.SetDefault(KeyOutput, "table")
	viper.SetDefault(KeyMemoryProbe, "heap")
	viper.SetDefault(KeyMemoryInterval, 5*time.Millisecond)
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
}

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
// Nothing is ever written back.
func Load(cfgFile string) error {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("ionbench")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}
