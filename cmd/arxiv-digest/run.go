package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/internal/arxiv"
	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/internal/digest"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, categorize, and write the daily digest",
	Long: `Run executes the digest pipeline once: query arXiv for the newest papers
matching the configured topic, classify each into a category by keyword
scoring, and overwrite the output file with the grouped markdown report.

Flags override values from the config file; unset values fall back to the
built-in neuromorphic-computing defaults.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().String("query", "", "arXiv search expression")
	runCmd.Flags().Int("max-results", 0, "maximum number of papers to fetch")
	runCmd.Flags().String("output", "", "path of the markdown digest to write")
	runCmd.Flags().String("categories", "", "YAML file with category definitions")
	runCmd.Flags().Duration("timeout", 0, "HTTP request timeout")

	rootCmd.AddCommand(runCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg := digestConfig(cmd)

	if path, _ := cmd.Flags().GetString("categories"); path != "" {
		cats, fallback, err := digest.LoadCategories(path)
		if err != nil {
			return err
		}
		cfg.Categories = cats
		if fallback != "" {
			cfg.FallbackCategory = fallback
		}
	}

	client := arxiv.NewClient(cfg.HTTPConfig)
	return digest.Run(context.Background(), cfg, client, time.Now, os.Stdout)
}
