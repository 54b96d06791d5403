package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/memo"
	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// Fetcher pulls news entries from the configured RSS feeds and normalizes
// them into NewsRecords. Only entries published inside the trailing window
// are kept; entries without a publish timestamp default to "now".
type Fetcher struct {
	feeds   map[string]string
	window  time.Duration
	clock   types.Clock
	parser  *gofeed.Parser
	cache   *memo.Slot[[]types.NewsRecord]
	scraper *Scraper
}

// NewFetcher creates a feed fetcher from config. The scraper is optional and
// only consulted when every feed comes back empty.
func NewFetcher(cfg *store.Config, clock types.Clock) *Fetcher {
	f := &Fetcher{
		feeds:  cfg.Feeds,
		window: time.Duration(cfg.Selection.WindowHours * float64(time.Hour)),
		clock:  clock,
		parser: gofeed.NewParser(),
		cache:  memo.New[[]types.NewsRecord](time.Duration(cfg.Cache.TTLMinutes)*time.Minute, clock),
	}
	if cfg.Fallback.Enabled {
		f.scraper = NewScraper(cfg.Fallback.Source, cfg.Fallback.URL, cfg.Fallback.Selector, clock)
	}
	return f
}

// FetchNews returns fresh news records, reusing the memoized result when the
// previous fetch is still inside the TTL window.
func (f *Fetcher) FetchNews(ctx context.Context) ([]types.NewsRecord, error) {
	if cached, ok := f.cache.Get(); ok {
		logger.Info(ctx, "Using cached news", "articles", len(cached))
		return cached, nil
	}

	records, err := f.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	f.cache.Set(records)
	return records, nil
}

// Refresh bypasses the memo and forces a fresh fetch.
func (f *Fetcher) Refresh(ctx context.Context) ([]types.NewsRecord, error) {
	f.cache.Invalidate()
	return f.FetchNews(ctx)
}

// fetchAll walks every configured feed in sorted name order, so record order
// is stable across runs and ties in scoring break the same way every time.
// A single bad feed is logged and skipped; the cycle only fails when no feed
// could be fetched at all.
func (f *Fetcher) fetchAll(ctx context.Context) ([]types.NewsRecord, error) {
	cutoff := f.clock.Now().Add(-f.window)

	sources := make([]string, 0, len(f.feeds))
	for source := range f.feeds {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	records := []types.NewsRecord{}
	failures := 0

	for _, source := range sources {
		items, err := f.fetchFeed(ctx, source, f.feeds[source], cutoff)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to fetch feed", err, "source", source)
			failures++
			continue
		}
		records = append(records, items...)
	}

	if failures == len(f.feeds) {
		return nil, fmt.Errorf("all %d feeds failed", failures)
	}

	if len(records) == 0 && f.scraper != nil {
		logger.Info(ctx, "No fresh articles from feeds, trying headline scraper")
		scraped, err := f.scraper.ScrapeHeadlines(ctx)
		if err != nil {
			logger.ErrorWithErr(ctx, "Headline scraper fallback failed", err)
		} else {
			records = append(records, scraped...)
		}
	}

	logger.Info(ctx, "News fetch completed", "articles", len(records), "failed_feeds", failures)
	return records, nil
}

func (f *Fetcher) fetchFeed(ctx context.Context, source, url string, cutoff time.Time) ([]types.NewsRecord, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	records := []types.NewsRecord{}
	for _, item := range parsed.Items {
		published := f.clock.Now()
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}
		if published.Before(cutoff) {
			continue
		}

		records = append(records, types.NewsRecord{
			Title:     item.Title,
			Summary:   item.Description,
			Source:    source,
			Published: published,
		})
	}

	logger.Debug(ctx, "Feed parsed", "source", source, "total", len(parsed.Items), "fresh", len(records))
	return records, nil
}
