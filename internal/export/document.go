package export

import (
	"fmt"
	"strings"

	"github.com/frnietz/newsletter-tr/internal/bulletin"
)

// BuildDocument renders the bulletin as a flat Markdown document: dated
// heading, one numbered section per article with summary and rationale,
// then the overall market summary. Both export formats are produced from
// this one document.
func BuildDocument(b *bulletin.Bulletin) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Günlük Piyasa Bülteni – %s\n\n", b.Date.Format("02 January 2006"))

	for i, rec := range b.TopNews {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i+1, rec.Title)
		if rec.Summary != "" {
			fmt.Fprintf(&sb, "%s\n\n", rec.Summary)
		}
		fmt.Fprintf(&sb, "Why this matters: %s\n\n", b.Rationales[i])
	}

	sb.WriteString("## Piyasa Özeti\n\n")
	fmt.Fprintf(&sb, "%s\n", b.Summary)

	return sb.String()
}
