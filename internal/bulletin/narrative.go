package bulletin

import (
	"fmt"
	"math"
	"strings"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// Narrator produces the human-readable Turkish summary strings for the
// bulletin: the market summary line and the per-article rationale.
type Narrator struct {
	rules    []store.NarrativeRule
	fallback string
}

// NewNarrator builds the narrator from the configured rule list. Rule order
// is significant: the first matching group wins.
func NewNarrator(cfg *store.Config) *Narrator {
	return &Narrator{
		rules:    cfg.Narrative.Rules,
		fallback: cfg.Narrative.Fallback,
	}
}

// MarketSummary renders the fixed closing-summary template. A strictly
// positive change reads as rising; zero goes down the falling branch.
func (n *Narrator) MarketSummary(snapshot types.MarketSnapshot) string {
	direction := "düşüşle"
	if snapshot.IndexChangePct > 0 {
		direction = "yükselişle"
	}
	return fmt.Sprintf(
		"BIST 100 günü %%%.2f %s %.2f seviyesinde tamamladı. USD/TRY %.2f seviyesinde izleniyor.",
		math.Abs(snapshot.IndexChangePct), direction, snapshot.IndexClose, snapshot.FXRate,
	)
}

// WhyThisMatters returns the rationale sentence for a record. Only the title
// is checked, unlike sector classification which also reads the summary.
func (n *Narrator) WhyThisMatters(rec *types.NewsRecord) string {
	title := strings.ToLower(rec.Title)

	for _, rule := range n.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(title, strings.ToLower(kw)) {
				return rule.Sentence
			}
		}
	}
	return n.fallback
}
