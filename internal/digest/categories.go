// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// categoriesFile is the YAML shape of a category definition file:
//
//	fallback: 📂 General / Uncategorized
//	categories:
//	  - name: 🛠 Hardware & Materials
//	    keywords: [memristor, rram, crossbar]
type categoriesFile struct {
	Fallback   string           `yaml:"fallback"`
	Categories []types.Category `yaml:"categories"`
}

// LoadCategories reads a category definition file. The returned fallback is
// empty when the file does not set one, in which case the caller keeps its
// default. Consistency checks happen later in DigestConfig.Validate, once
// the categories are part of a full configuration.
func LoadCategories(path string) ([]types.Category, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading categories: %w", err)
	}
	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing categories: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, "", fmt.Errorf("categories file %s defines no categories", path)
	}
	return f.Categories, f.Fallback, nil
}
