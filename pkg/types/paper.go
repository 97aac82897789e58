// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the daily digest
// pipeline: the paper records returned by the arXiv client and the digest
// configuration consumed by every stage.
package types

import "time"

// PaperRecord holds the metadata of one paper returned by the arXiv API.
// Title and Summary are passed through as the feed delivers them and may
// contain embedded line breaks; normalization happens at render time.
type PaperRecord struct {
	// Title is the paper title as returned by the feed.
	Title string `json:"title" yaml:"title"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// EntryID is the stable arXiv abstract URL (e.g.
	// "http://arxiv.org/abs/2301.07041v1"). It doubles as the link target
	// in the rendered digest.
	EntryID string `json:"entry_id" yaml:"entry_id"`

	// Published is the submission timestamp reported by the feed.
	Published time.Time `json:"published" yaml:"published"`

	// Authors lists the author names in the order the feed gives them.
	Authors []string `json:"authors" yaml:"authors"`
}
