package bulletin

import (
	"strings"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// Classifier tags records with sector labels via keyword matching over
// title+summary. Tagging is non-exclusive; a record matching no sector group
// falls back to the BroadMarket singleton.
type Classifier struct {
	groups []sectorGroup
}

type sectorGroup struct {
	label    types.SectorLabel
	keywords []string
}

// NewClassifier builds the classifier from the configured sector keyword
// groups, in the fixed Banking/Industrial/Energy order.
func NewClassifier(cfg *store.Config) *Classifier {
	c := &Classifier{}
	for _, label := range types.HeatSectors {
		keywords, ok := cfg.Sectors[string(label)]
		if !ok {
			continue
		}
		c.groups = append(c.groups, sectorGroup{
			label:    label,
			keywords: lowerAll(keywords),
		})
	}
	return c
}

// Classify returns the sector labels for a record. The result is never
// empty: no match yields {BroadMarket}.
func (c *Classifier) Classify(rec *types.NewsRecord) []types.SectorLabel {
	text := strings.ToLower(rec.Title + " " + rec.Summary)

	labels := []types.SectorLabel{}
	for _, g := range c.groups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				labels = append(labels, g.label)
				break
			}
		}
	}

	if len(labels) == 0 {
		return []types.SectorLabel{types.SectorBroadMarket}
	}
	return labels
}
