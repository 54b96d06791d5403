package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper is a last-resort headline source used when every RSS feed returns
// empty: it lifts headline text straight off a news site listing page.
// Scraped items have no publish timestamp, so Published defaults to "now".
type Scraper struct {
	source   string
	pageURL  string
	selector string
	timeout  time.Duration
	clock    types.Clock
}

// NewScraper creates a headline scraper for a single listing page.
func NewScraper(source, pageURL, selector string, clock types.Clock) *Scraper {
	return &Scraper{
		source:   source,
		pageURL:  pageURL,
		selector: selector,
		timeout:  20 * time.Second,
		clock:    clock,
	}
}

// ScrapeHeadlines fetches the listing page and extracts headline records.
func (s *Scraper) ScrapeHeadlines(ctx context.Context) ([]types.NewsRecord, error) {
	records := []types.NewsRecord{}
	now := s.clock.Now()

	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.pageURL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML(s.selector, func(e *colly.HTMLElement) {
		title, summary := extractHeadline(e.DOM)
		if title == "" {
			return
		}
		records = append(records, types.NewsRecord{
			Title:     title,
			Summary:   summary,
			Source:    s.source,
			Published: now,
		})
	})

	if err := c.Visit(s.pageURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", s.pageURL, err)
	}

	logger.Info(ctx, "Headline scrape completed", "source", s.source, "articles", len(records))
	return records, nil
}

// extractHeadline pulls the title from the first anchor and treats any
// trailing paragraph text as the summary.
func extractHeadline(sel *goquery.Selection) (title, summary string) {
	title = strings.TrimSpace(sel.Find("a").First().Text())
	if title == "" {
		title = strings.TrimSpace(sel.Find("h2, h3").First().Text())
	}
	summary = strings.TrimSpace(sel.Find("p").First().Text())
	return title, summary
}

func getDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
