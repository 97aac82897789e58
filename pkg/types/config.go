// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"
)

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Category pairs a display name with the lowercase keywords that vote for it.
// The digest is configured with one ordered slice of categories; that single
// slice drives both classification iteration order (which decides ties) and
// the section order of the rendered report, so the two can never disagree.
type Category struct {
	// Name is the unique category label, used verbatim as the section heading.
	Name string `json:"name" yaml:"name"`

	// Keywords are matched as lowercase substrings of title+abstract.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// DigestConfig holds the settings for one digest run.
type DigestConfig struct {
	HTTPConfig `yaml:",inline"`

	// Query is the arXiv search expression.
	Query string `json:"query" yaml:"query"`

	// MaxResults caps how many papers are fetched (newest first).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// OutputPath is the file the rendered digest is written to. The file is
	// fully overwritten each run.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Categories is the ordered category list. Earlier categories win ties.
	Categories []Category `json:"categories" yaml:"categories"`

	// FallbackCategory is the bucket for papers matching no keyword at all.
	// It is rendered last and must not collide with a configured category.
	FallbackCategory string `json:"fallback_category" yaml:"fallback_category"`
}

// DefaultConfig returns the digest configuration used by the daily job.
func DefaultConfig() DigestConfig {
	return DigestConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "arxiv-digest/0.1",
		},
		// 'all:' searches title + abstract + authors, broader than 'abs:'.
		Query:      `all:neuromorphic OR all:"spiking neural network" OR all:memristor OR all:"in-memory computing" OR all:"event-based vision"`,
		MaxResults: 30,
		OutputPath: "README.md",
		Categories: []Category{
			{
				Name: "🛠 Hardware & Materials",
				Keywords: []string{
					"memristor", "rram", "pcm", "device", "material", "circuit", "cmos",
					"transistor", "fpga", "accelerator", "chip", "integrated", "hardware",
					"synaptic device", "crossbar", "conductance",
				},
			},
			{
				Name: "🧠 Algorithms & Theory",
				Keywords: []string{
					"plasticity", "stdp", "learning rule", "backpropagation", "dynamics",
					"bifurcation", "chaos", "neuron model", "snn", "spiking", "theory",
					"optimization", "encoding", "decoding", "information", "liquid state",
				},
			},
			{
				Name: "👁️ Applications & Sensing",
				Keywords: []string{
					"vision", "camera", "dvs", "event-based", "sensor", "tactile", "skin",
					"robot", "recognition", "classification", "detection", "tracking",
					"audio", "speech", "gesture", "uav", "drone",
				},
			},
		},
		FallbackCategory: "📂 General / Uncategorized",
	}
}

// Validate checks the configuration before any network call is made. It
// guards the invariants the pipeline relies on: a non-empty query, a positive
// result cap, unique non-empty category names, at least one keyword per
// category, lowercase keywords (matching lowercases the text, so an
// uppercase keyword could never match), and a fallback name distinct from
// every configured category.
func (c DigestConfig) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return fmt.Errorf("query must not be empty")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if strings.TrimSpace(c.FallbackCategory) == "" {
		return fmt.Errorf("fallback_category must not be empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("category name must not be empty")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category name %q", cat.Name)
		}
		seen[cat.Name] = true
		if cat.Name == c.FallbackCategory {
			return fmt.Errorf("category %q collides with the fallback category", cat.Name)
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.Name)
		}
		for _, kw := range cat.Keywords {
			if kw == "" {
				return fmt.Errorf("category %q has an empty keyword", cat.Name)
			}
			if kw != strings.ToLower(kw) {
				return fmt.Errorf("category %q keyword %q must be lowercase", cat.Name, kw)
			}
		}
	}
	return nil
}
