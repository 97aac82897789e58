// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// digestConfig assembles the run configuration: built-in defaults, then
// config-file/env values read by viper, then explicit flags, in increasing
// precedence.
func digestConfig(cmd *cobra.Command) types.DigestConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetString("query"); v != "" {
		cfg.Query = v
	}
	if v := viper.GetInt("max_results"); v > 0 {
		cfg.MaxResults = v
	}
	if v := viper.GetString("output_path"); v != "" {
		cfg.OutputPath = v
	}
	if v := viper.GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("user_agent"); v != "" {
		cfg.UserAgent = v
	}

	if v, _ := cmd.Flags().GetString("query"); v != "" {
		cfg.Query = v
	}
	if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
		cfg.MaxResults = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputPath = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return cfg
}
