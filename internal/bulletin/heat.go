package bulletin

import (
	"strings"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// HeatAggregator accumulates a per-sector sentiment counter across the
// selected records. Records must already carry their sector tags.
type HeatAggregator struct {
	positive []string
	negative []string
}

// NewHeatAggregator builds the aggregator from the configured sentiment lists.
func NewHeatAggregator(cfg *store.Config) *HeatAggregator {
	return &HeatAggregator{
		positive: lowerAll(cfg.Sentiment.Positive),
		negative: lowerAll(cfg.Sentiment.Negative),
	}
}

// AggregateHeat adds each record's sentiment delta to every one of its
// tagged sectors, BroadMarket excluded. The positive and negative checks
// both apply, so a record carrying both kinds of keywords nets to zero.
func (h *HeatAggregator) AggregateHeat(records []types.NewsRecord) types.HeatMap {
	heat := types.NewHeatMap()

	for i := range records {
		delta := h.sentimentDelta(&records[i])
		for _, sector := range records[i].Sectors {
			if _, ok := heat[sector]; ok {
				heat[sector] += delta
			}
		}
	}

	return heat
}

func (h *HeatAggregator) sentimentDelta(rec *types.NewsRecord) int {
	text := strings.ToLower(rec.Title + " " + rec.Summary)

	delta := 0
	if containsAny(text, h.positive) {
		delta++
	}
	if containsAny(text, h.negative) {
		delta--
	}
	return delta
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
