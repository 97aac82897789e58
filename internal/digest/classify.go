// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"strings"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// Classify assigns a paper to one category by keyword scoring and returns
// the category name.
//
// Title and summary are concatenated and lowercased; each category scores
// one point per keyword present anywhere in that text. Presence counts once
// no matter how often the keyword repeats, and matching is plain substring
// containment rather than word-boundary matching ("snn" matches "SNNcore").
// The first category in slice order to reach the maximum score wins, so
// ties resolve deterministically in favor of earlier categories. A maximum
// score of zero lands the paper in the fallback category.
func Classify(title, summary string, cats []types.Category, fallback string) string {
	text := strings.ToLower(title + " " + summary)

	best := fallback
	bestScore := 0
	for _, cat := range cats {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}
	return best
}
