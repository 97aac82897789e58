// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// Searcher is the collaborator that supplies the ordered paper list,
// sorted by submission date, newest first.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]types.PaperRecord, error)
}

// Run executes one digest: validate the configuration, fetch papers, group
// them by category, render the report, and overwrite cfg.OutputPath with it.
// Progress lines go to w. Any upstream failure aborts the run before the
// output file is touched.
func Run(ctx context.Context, cfg types.DigestConfig, searcher Searcher, now func() time.Time, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid digest config: %w", err)
	}

	fmt.Fprintf(w, "🔎 Searching arXiv for: %s\n", cfg.Query)
	papers, err := searcher.Search(ctx, cfg.Query, cfg.MaxResults)
	if err != nil {
		return fmt.Errorf("searching arXiv: %w", err)
	}
	fmt.Fprintf(w, "✅ Found %d papers.\n", len(papers))

	grouping := Group(papers, cfg.Categories, cfg.FallbackCategory, w)
	doc := Render(grouping, now())

	if err := os.WriteFile(cfg.OutputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}
	fmt.Fprintf(w, "📝 %s updated successfully.\n", cfg.OutputPath)
	return nil
}
