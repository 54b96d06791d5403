package bulletin

import (
	"math"
	"sort"
	"strings"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

// Scorer assigns a relevance score to news records from keyword membership,
// source trust, and recency decay. Given a fixed clock the score is a pure
// function of the record.
type Scorer struct {
	highKeywords   []string
	mediumKeywords []string
	highWeight     float64
	mediumWeight   float64
	trustedSources map[string]bool
	trustBonus     float64
	recencyCap     float64
	clock          types.Clock
}

// NewScorer creates a scorer with the configured keyword lists and weights.
func NewScorer(cfg *store.Config, clock types.Clock) *Scorer {
	trusted := make(map[string]bool, len(cfg.Scoring.TrustedSources))
	for _, s := range cfg.Scoring.TrustedSources {
		trusted[s] = true
	}

	return &Scorer{
		highKeywords:   lowerAll(cfg.Scoring.HighKeywords),
		mediumKeywords: lowerAll(cfg.Scoring.MediumKeywords),
		highWeight:     cfg.Scoring.HighWeight,
		mediumWeight:   cfg.Scoring.MediumWeight,
		trustedSources: trusted,
		trustBonus:     cfg.Scoring.TrustBonus,
		recencyCap:     cfg.Scoring.RecencyCapHrs,
		clock:          clock,
	}
}

// Score computes the relevance score without mutating the record.
func (s *Scorer) Score(rec *types.NewsRecord) float64 {
	text := strings.ToLower(rec.Title + " " + rec.Summary)

	score := 0.0
	for _, kw := range s.highKeywords {
		if strings.Contains(text, kw) {
			score += s.highWeight
		}
	}
	for _, kw := range s.mediumKeywords {
		if strings.Contains(text, kw) {
			score += s.mediumWeight
		}
	}

	if s.trustedSources[rec.Source] {
		score += s.trustBonus
	}

	score += s.recencyBonus(rec)
	return score
}

// recencyBonus decays linearly from the cap to zero over recencyCap hours
// and is clamped to [0, cap] so future-dated entries cannot overshoot.
func (s *Scorer) recencyBonus(rec *types.NewsRecord) float64 {
	hoursOld := s.clock.Now().Sub(rec.Published).Hours()
	return math.Min(s.recencyCap, math.Max(0, s.recencyCap-hoursOld))
}

// SelectTop scores every record exactly once, sorts descending by score with
// ties broken by original order, and returns the first n. Fewer than n
// records returns all of them.
func (s *Scorer) SelectTop(records []types.NewsRecord, n int) []types.NewsRecord {
	for i := range records {
		if !records[i].Scored {
			records[i].Score = s.Score(&records[i])
			records[i].Scored = true
		}
	}

	sorted := make([]types.NewsRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
