// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"strings"
	"time"
)

const (
	reportTitle = "# 🧠 Open Neuromorphic - Daily ArXiv"
	reportIntro = "Papers are automatically categorized by topic and sorted by date."

	emptyNotice = "### 😴 No new papers found today.\nCheck back tomorrow!"

	// maxAuthors is how many author names are listed before "et al.".
	maxAuthors = 3
)

// Render produces the markdown digest for a grouping. now is the run
// timestamp shown in the header; it is independent of any paper date.
// Categories whose bucket is empty are skipped entirely; when the grouping
// holds no papers at all a single notice block replaces the sections.
func Render(g Grouping, now time.Time) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n\n")
	fmt.Fprintf(&b, "**Automated Daily Update** | Last Run: %s UTC\n\n", now.UTC().Format("2006-01-02 15:04"))
	b.WriteString(reportIntro + "\n\n")

	if g.Total() == 0 {
		b.WriteString(emptyNotice)
		return b.String()
	}

	for _, name := range g.Order {
		papers := g.Buckets[name]
		if len(papers) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", name)
		for _, p := range papers {
			fmt.Fprintf(&b, "### [%s](%s)\n", p.Title, p.EntryID)
			fmt.Fprintf(&b, "**%s** | *%s*\n\n", p.Published.UTC().Format("2006-01-02"), formatAuthors(p.Authors))
			fmt.Fprintf(&b, "> %s\n\n", Normalize(p.Summary))
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}

// formatAuthors joins author names with ", ", keeping only the first three
// and appending " et al." when there are more. No authors yields "".
func formatAuthors(authors []string) string {
	if len(authors) > maxAuthors {
		return strings.Join(authors[:maxAuthors], ", ") + " et al."
	}
	return strings.Join(authors, ", ")
}
