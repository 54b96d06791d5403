package bulletin

import (
	"testing"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

func newTestHeat() *HeatAggregator {
	return NewHeatAggregator(store.DefaultConfig())
}

func TestSentimentDelta(t *testing.T) {
	h := newTestHeat()

	cases := []struct {
		title string
		want  int
	}{
		{"Bankacılık hisselerinde yükseliş", 1},
		{"Sektörde sert düşüş", -1},
		{"Sıradan bir işlem günü", 0},
		// Positive and negative both present: checks apply independently
		// and cancel to zero.
		{"Rekor üretime rağmen kur riski", 0},
	}

	for _, c := range cases {
		rec := types.NewsRecord{Title: c.title}
		if got := h.sentimentDelta(&rec); got != c.want {
			t.Errorf("delta(%q): expected %d, got %d", c.title, c.want, got)
		}
	}
}

func TestAggregateHeatSumsPerSector(t *testing.T) {
	h := newTestHeat()

	records := []types.NewsRecord{
		{Title: "Banka karlarında yükseliş", Sectors: []types.SectorLabel{types.SectorBanking}},
		{Title: "Kredilerde güçlü artış", Sectors: []types.SectorLabel{types.SectorBanking}},
		{Title: "Enerji üretiminde gerileme", Sectors: []types.SectorLabel{types.SectorEnergy}},
	}

	heat := h.AggregateHeat(records)

	if heat[types.SectorBanking] != 2 {
		t.Errorf("Expected Banking 2, got %d", heat[types.SectorBanking])
	}
	if heat[types.SectorEnergy] != -1 {
		t.Errorf("Expected Energy -1, got %d", heat[types.SectorEnergy])
	}
	if heat[types.SectorIndustrial] != 0 {
		t.Errorf("Expected Industrial 0, got %d", heat[types.SectorIndustrial])
	}
}

func TestAggregateHeatMultiSectorRecord(t *testing.T) {
	h := newTestHeat()

	// One delta applied to every matched sector.
	records := []types.NewsRecord{
		{
			Title:   "Rekor ihracat bankaları da sevindirdi",
			Sectors: []types.SectorLabel{types.SectorBanking, types.SectorIndustrial},
		},
	}

	heat := h.AggregateHeat(records)
	if heat[types.SectorBanking] != 1 || heat[types.SectorIndustrial] != 1 {
		t.Errorf("Expected +1 in both sectors, got %v", heat)
	}
}

func TestAggregateHeatIgnoresBroadMarket(t *testing.T) {
	h := newTestHeat()

	records := []types.NewsRecord{
		{Title: "Olumlu genel görünüm", Sectors: []types.SectorLabel{types.SectorBroadMarket}},
	}

	heat := h.AggregateHeat(records)
	if _, ok := heat[types.SectorBroadMarket]; ok {
		t.Error("BroadMarket must never accumulate heat")
	}
	for _, sector := range types.HeatSectors {
		if heat[sector] != 0 {
			t.Errorf("Expected %s untouched, got %d", sector, heat[sector])
		}
	}
}

func TestAllNeutralSectorProjectsNeutral(t *testing.T) {
	h := newTestHeat()

	// No sentiment keywords anywhere near Energy.
	records := []types.NewsRecord{
		{Title: "Elektrik dağıtım ihalesi sonuçlandı", Sectors: []types.SectorLabel{types.SectorEnergy}},
		{Title: "Doğalgaz hattı açıldı", Sectors: []types.SectorLabel{types.SectorEnergy}},
	}

	labels := h.AggregateHeat(records).Labels()
	if labels[types.SectorEnergy] != types.HeatNeutral {
		t.Errorf("Expected Energy Neutral, got %s", labels[types.SectorEnergy])
	}
}

func TestHeatMapLabelSignMapping(t *testing.T) {
	heat := types.HeatMap{
		types.SectorBanking:    3,
		types.SectorIndustrial: -1,
		types.SectorEnergy:     0,
	}

	labels := heat.Labels()
	if labels[types.SectorBanking] != types.HeatPositive {
		t.Errorf("Expected Positive for 3, got %s", labels[types.SectorBanking])
	}
	if labels[types.SectorIndustrial] != types.HeatNegative {
		t.Errorf("Expected Negative for -1, got %s", labels[types.SectorIndustrial])
	}
	if labels[types.SectorEnergy] != types.HeatNeutral {
		t.Errorf("Expected Neutral for 0, got %s", labels[types.SectorEnergy])
	}
}
