package bulletin

import (
	"context"
	"fmt"
	"time"

	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// NewsSource yields normalized news records.
type NewsSource interface {
	FetchNews(ctx context.Context) ([]types.NewsRecord, error)
}

// QuoteSource yields the market snapshot for the cycle.
type QuoteSource interface {
	FetchSnapshot(ctx context.Context) (types.MarketSnapshot, error)
}

// Bulletin is the output of one pipeline cycle. Rationales is aligned
// index-for-index with TopNews.
type Bulletin struct {
	Date       time.Time                           `json:"date"`
	TopNews    []types.NewsRecord                  `json:"top_news"`
	Rationales []string                            `json:"rationales"`
	Snapshot   types.MarketSnapshot                `json:"snapshot"`
	HeatRaw    types.HeatMap                       `json:"heat_raw"`
	Heat       map[types.SectorLabel]types.HeatLevel `json:"heat"`
	Summary    string                              `json:"summary"`
}

// Analyzer runs the full pipeline: fetch news, score and select, fetch the
// snapshot, tag sectors, aggregate heat, generate narratives. Each run is
// independent; nothing survives the cycle except the fetch memos.
type Analyzer struct {
	news       NewsSource
	quotes     QuoteSource
	scorer     *Scorer
	classifier *Classifier
	heat       *HeatAggregator
	narrator   *Narrator
	topN       int
	clock      types.Clock
}

// NewAnalyzer wires the pipeline from config and the two sources.
func NewAnalyzer(cfg *store.Config, news NewsSource, quotes QuoteSource, clock types.Clock) *Analyzer {
	return &Analyzer{
		news:       news,
		quotes:     quotes,
		scorer:     NewScorer(cfg, clock),
		classifier: NewClassifier(cfg),
		heat:       NewHeatAggregator(cfg),
		narrator:   NewNarrator(cfg),
		topN:       cfg.Selection.TopN,
		clock:      clock,
	}
}

// Narrator exposes the narrative generator for renderers that need to
// re-derive strings outside a full run.
func (a *Analyzer) Narrator() *Narrator {
	return a.narrator
}

// Run executes one pipeline cycle. News fetch happens first; a quote failure
// afterwards still fails the whole cycle rather than rendering half a
// bulletin.
func (a *Analyzer) Run(ctx context.Context) (*Bulletin, error) {
	timer := logger.StartOperation(ctx, "bulletin.run")
	ctx = timer.GetContext()

	records, err := a.news.FetchNews(ctx)
	if err != nil {
		timer.EndWithError(err)
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	top := a.scorer.SelectTop(records, a.topN)

	snapshot, err := a.quotes.FetchSnapshot(ctx)
	if err != nil {
		timer.EndWithError(err)
		return nil, fmt.Errorf("fetch market snapshot: %w", err)
	}

	rationales := make([]string, len(top))
	for i := range top {
		top[i].Sectors = a.classifier.Classify(&top[i])
		rationales[i] = a.narrator.WhyThisMatters(&top[i])
	}

	heat := a.heat.AggregateHeat(top)

	b := &Bulletin{
		Date:       a.clock.Now(),
		TopNews:    top,
		Rationales: rationales,
		Snapshot:   snapshot,
		HeatRaw:    heat,
		Heat:       heat.Labels(),
		Summary:    a.narrator.MarketSummary(snapshot),
	}

	logger.Cycle(ctx, len(records), len(top), snapshot.IndexChangePct)
	timer.End()
	return b, nil
}
