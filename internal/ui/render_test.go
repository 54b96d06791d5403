package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/frnietz/newsletter-tr/internal/bulletin"
	"github.com/frnietz/newsletter-tr/internal/types"
)

func testBulletin() *bulletin.Bulletin {
	heat := map[types.SectorLabel]types.HeatLevel{
		types.SectorBanking:    types.HeatPositive,
		types.SectorIndustrial: types.HeatNeutral,
		types.SectorEnergy:     types.HeatNegative,
	}

	return &bulletin.Bulletin{
		Date: time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		TopNews: []types.NewsRecord{
			{
				Title:   "TCMB faiz kararını açıkladı",
				Summary: "Politika faizi sabit tutuldu.",
				Source:  "ReutersTR",
				Score:   9,
				Sectors: []types.SectorLabel{types.SectorBanking},
			},
		},
		Rationales: []string{"Merkez bankası kararları kredi maliyetlerini doğrudan etkiler."},
		Snapshot:   types.MarketSnapshot{IndexClose: 9947, IndexChangePct: 1.5, FXRate: 41.23},
		Heat:       heat,
		Summary:    "BIST 100 günü %1.50 yükselişle 9947.00 seviyesinde tamamladı.",
	}
}

func TestRenderDashboard(t *testing.T) {
	out := RenderDashboard(testBulletin())

	for _, want := range []string{
		"Turkish Market Daily Newsletter",
		"9947.00",
		"+1.50%",
		"41.23",
		"Market Mood",
		"Positive",
		"1. TCMB faiz kararını açıkladı",
		"Sector Impact: Banking",
		"Why this matters: Merkez bankası kararları",
		"Source: ReutersTR",
		"Score: 9.00",
		"Piyasa Özeti",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
}

func TestRenderDashboardHeatRows(t *testing.T) {
	out := RenderDashboard(testBulletin())

	for _, sector := range types.HeatSectors {
		if !strings.Contains(out, string(sector)) {
			t.Errorf("Dashboard missing heat row for %s", sector)
		}
	}
	if !strings.Contains(out, "🔥") || !strings.Contains(out, "❄️") || !strings.Contains(out, "➖") {
		t.Error("Dashboard missing heat level indicators")
	}
}

func TestRenderDashboardNegativeMood(t *testing.T) {
	b := testBulletin()
	b.Snapshot.IndexChangePct = -0.8

	out := RenderDashboard(b)
	if !strings.Contains(out, "Negative") {
		t.Error("Expected negative market mood when the index falls")
	}
	if !strings.Contains(out, "-0.80%") {
		t.Error("Expected signed change percentage")
	}
}
