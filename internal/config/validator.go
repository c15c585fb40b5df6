package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	apperrors "ionbench/internal/errors"
)

// ValidateConfig validates configuration values and returns an InvalidArgumentError
// listing every violation. It should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet(KeyIterations) {
		if n := viper.GetInt(KeyIterations); n < 1 {
			errors = append(errors, fmt.Sprintf("iterations must be at least 1, got: %d", n))
		}
	}

	if viper.IsSet(KeyWarmups) {
		if n := viper.GetInt(KeyWarmups); n < 0 {
			errors = append(errors, fmt.Sprintf("warmups must not be negative, got: %d", n))
		}
	}

	if viper.IsSet(KeyMemoryInterval) {
		if d := viper.GetDuration(KeyMemoryInterval); d <= 0 {
			errors = append(errors, fmt.Sprintf("memory.interval must be positive, got: %v", d))
		}
	}

	if viper.IsSet(KeyMemoryProbe) {
		switch p := viper.GetString(KeyMemoryProbe); p {
		case "heap", "rss":
		default:
			errors = append(errors, fmt.Sprintf("memory.probe must be heap or rss, got: %q", p))
		}
	}

	if viper.IsSet(KeyOutput) {
		switch o := viper.GetString(KeyOutput); o {
		case "table", "json":
		default:
			errors = append(errors, fmt.Sprintf("output must be table or json, got: %q", o))
		}
	}

	if len(errors) > 0 {
		return apperrors.NewInvalidArgumentError("", "configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
