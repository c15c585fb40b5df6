package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	apperrors "ionbench/internal/errors"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name: "Valid Configuration",
			setup: func() {
				viper.Set(KeyIterations, 10)
				viper.Set(KeyWarmups, 0)
				viper.Set(KeyMemoryInterval, "10ms")
				viper.Set(KeyMemoryProbe, "rss")
				viper.Set(KeyOutput, "json")
			},
			wantError: false,
		},
		{
			name:      "Defaults Only",
			setup:     SetDefaults,
			wantError: false,
		},
		{
			name: "Zero Iterations",
			setup: func() {
				viper.Set(KeyIterations, 0)
			},
			wantError: true,
			errMsg:    "iterations must be at least 1",
		},
		{
			name: "Negative Warmups",
			setup: func() {
				viper.Set(KeyWarmups, -1)
			},
			wantError: true,
			errMsg:    "warmups must not be negative",
		},
		{
			name: "Invalid Interval",
			setup: func() {
				viper.Set(KeyMemoryInterval, -time.Second)
			},
			wantError: true,
			errMsg:    "memory.interval must be positive",
		},
		{
			name: "Unknown Probe",
			setup: func() {
				viper.Set(KeyMemoryProbe, "vms")
			},
			wantError: true,
			errMsg:    "memory.probe must be heap or rss",
		},
		{
			name: "Unknown Output",
			setup: func() {
				viper.Set(KeyOutput, "csv")
			},
			wantError: true,
			errMsg:    "output must be table or json",
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set(KeyIterations, 0)
				viper.Set(KeyOutput, "csv")
			},
			wantError: true,
			errMsg:    "iterations must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()

			err := ValidateConfig()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.True(t, apperrors.IsInvalidArgument(err))
		})
	}
}
