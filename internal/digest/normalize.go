// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest implements the core of the daily digest: keyword
// classification of papers, grouping into category buckets, and rendering
// the markdown report.
package digest

import "strings"

// Normalize collapses embedded line breaks to single spaces and trims
// leading and trailing whitespace. Feed titles and abstracts arrive with
// hard wrapping; the rendered report needs them on one line.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
