package types

import "time"

// NewsRecord is a single normalized feed entry. Score is undefined until the
// scorer runs; Scored flips exactly once and Score never changes after that.
type NewsRecord struct {
	Title     string        `json:"title"`
	Summary   string        `json:"summary"`
	Source    string        `json:"source"`
	Published time.Time     `json:"published"`
	Score     float64       `json:"score"`
	Scored    bool          `json:"-"`
	Sectors   []SectorLabel `json:"sectors,omitempty"`
}

// MarketSnapshot holds the latest daily bar derived values. Immutable once
// constructed; one snapshot per fetch cycle.
type MarketSnapshot struct {
	IndexClose     float64   `json:"index_close"`
	IndexChangePct float64   `json:"index_change_pct"`
	FXRate         float64   `json:"fx_rate"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// SectorLabel is one of a fixed closed set of industry buckets.
type SectorLabel string

const (
	SectorBanking     SectorLabel = "Banking"
	SectorIndustrial  SectorLabel = "Industrial"
	SectorEnergy      SectorLabel = "Energy"
	SectorBroadMarket SectorLabel = "Broad Market"
)

// HeatSectors are the sectors that accumulate sentiment. BroadMarket never does.
var HeatSectors = []SectorLabel{SectorBanking, SectorIndustrial, SectorEnergy}

// HeatLevel is the tri-state sentiment label for a sector.
type HeatLevel string

const (
	HeatPositive HeatLevel = "Positive"
	HeatNegative HeatLevel = "Negative"
	HeatNeutral  HeatLevel = "Neutral"
)

// HeatMap accumulates per-sector sentiment deltas across the selected set.
type HeatMap map[SectorLabel]int

// NewHeatMap returns a map with every heat sector zeroed so all sectors show
// up in the projection even when nothing contributed.
func NewHeatMap() HeatMap {
	h := make(HeatMap, len(HeatSectors))
	for _, s := range HeatSectors {
		h[s] = 0
	}
	return h
}

// Labels projects accumulated values to tri-state labels: >0 Positive,
// <0 Negative, =0 Neutral.
func (h HeatMap) Labels() map[SectorLabel]HeatLevel {
	labels := make(map[SectorLabel]HeatLevel, len(h))
	for sector, v := range h {
		switch {
		case v > 0:
			labels[sector] = HeatPositive
		case v < 0:
			labels[sector] = HeatNegative
		default:
			labels[sector] = HeatNeutral
		}
	}
	return labels
}

// HasSector reports whether the record carries the given sector tag.
func (r *NewsRecord) HasSector(s SectorLabel) bool {
	for _, tag := range r.Sectors {
		if tag == s {
			return true
		}
	}
	return false
}
