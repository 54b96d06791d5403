package feed

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func selection(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Parsing test HTML: %v", err)
	}
	return doc.Find("div.haber").First()
}

func TestExtractHeadline(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		title   string
		summary string
	}{
		{
			name:    "anchor title with summary",
			html:    `<div class="haber"><a href="/x"> TCMB faiz kararı </a><p>Karar bugün açıklandı.</p></div>`,
			title:   "TCMB faiz kararı",
			summary: "Karar bugün açıklandı.",
		},
		{
			name:  "heading fallback when no anchor",
			html:  `<div class="haber"><h2>BIST 100 yükseldi</h2></div>`,
			title: "BIST 100 yükseldi",
		},
		{
			name: "empty block",
			html: `<div class="haber"><span>reklam</span></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, summary := extractHeadline(selection(t, tt.html))
			if title != tt.title {
				t.Errorf("Expected title %q, got %q", tt.title, title)
			}
			if summary != tt.summary {
				t.Errorf("Expected summary %q, got %q", tt.summary, summary)
			}
		})
	}
}

func TestGetDomain(t *testing.T) {
	if got := getDomain("https://bigpara.hurriyet.com.tr/haberler/"); got != "bigpara.hurriyet.com.tr" {
		t.Errorf("Expected host extracted, got %q", got)
	}
	if got := getDomain("://bad"); got != "" {
		t.Errorf("Expected empty domain for unparsable URL, got %q", got)
	}
}
