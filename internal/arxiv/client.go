// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv export API for recently submitted papers.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/internal/httputil"
	"github.com/OpenNeuromorphicComputing/OpenNeuromorphic-Daily/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// pageSize caps how many entries a single API request asks for. The export
// API serves large result sets in pages addressed by the start parameter.
const pageSize = 100

// Client queries the arXiv API for paper metadata.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient builds a Client from the shared HTTP settings.
func NewClient(cfg types.HTTPConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.UserAgent,
	}
}

// Search returns up to maxResults papers matching query, sorted by
// submission date, newest first. It pages through the feed until it has
// maxResults entries or the API returns a short page, and returns an error
// on any HTTP or decoding failure — never partial results.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]types.PaperRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("maxResults must be positive, got %d", maxResults)
	}

	var papers []types.PaperRecord
	for start := 0; len(papers) < maxResults; {
		want := maxResults - len(papers)
		if want > pageSize {
			want = pageSize
		}

		entries, err := c.fetchPage(ctx, query, start, want)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			papers = append(papers, toPaperRecord(entry))
		}

		// A short page means the result set is exhausted.
		if len(entries) < want {
			break
		}
		start += len(entries)
	}
	return papers, nil
}

func (c *Client) fetchPage(ctx context.Context, query string, start, count int) ([]feedEntry, error) {
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", strconv.Itoa(start))
	params.Set("max_results", strconv.Itoa(count))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return feed.Entries, nil
}

// toPaperRecord converts one Atom entry. Outer whitespace is trimmed;
// embedded line breaks inside title and summary are kept for the renderer's
// normalizer to deal with.
func toPaperRecord(entry feedEntry) types.PaperRecord {
	r := types.PaperRecord{
		Title:   strings.TrimSpace(entry.Title),
		Summary: strings.TrimSpace(entry.Summary),
		EntryID: strings.TrimSpace(entry.ID),
	}
	for _, a := range entry.Authors {
		r.Authors = append(r.Authors, strings.TrimSpace(a.Name))
	}
	if t, err := time.Parse(time.RFC3339, entry.Published); err == nil {
		r.Published = t
	}
	return r
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []feedAuthor `xml:"author"`
}

type feedAuthor struct {
	Name string `xml:"name"`
}
