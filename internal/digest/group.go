// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"io"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// Grouping partitions the fetched papers into per-category buckets.
// Order lists the category names in render order (configured categories
// first, fallback last); Buckets holds every name in Order, empty or not,
// with papers in the order they were classified.
type Grouping struct {
	Order   []string
	Buckets map[string][]types.PaperRecord
}

// Total returns the number of papers across all buckets.
func (g Grouping) Total() int {
	n := 0
	for _, papers := range g.Buckets {
		n += len(papers)
	}
	return n
}

// Group classifies each paper once, in input order, and appends it to the
// bucket named by the classification. One progress line per paper goes to w.
func Group(papers []types.PaperRecord, cats []types.Category, fallback string, w io.Writer) Grouping {
	g := Grouping{
		Buckets: make(map[string][]types.PaperRecord, len(cats)+1),
	}
	for _, cat := range cats {
		g.Order = append(g.Order, cat.Name)
		g.Buckets[cat.Name] = nil
	}
	g.Order = append(g.Order, fallback)
	g.Buckets[fallback] = nil

	for _, p := range papers {
		name := Classify(p.Title, p.Summary, cats, fallback)
		g.Buckets[name] = append(g.Buckets[name], p)
		fmt.Fprintf(w, "   -> [%s] %s...\n", name, truncate(p.Title, 40))
	}
	return g
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
