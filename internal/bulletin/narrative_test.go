package bulletin

import (
	"strings"
	"testing"

	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
)

func newTestNarrator() *Narrator {
	return NewNarrator(store.DefaultConfig())
}

func TestMarketSummaryRising(t *testing.T) {
	n := newTestNarrator()

	snap := types.MarketSnapshot{IndexClose: 9850.25, IndexChangePct: 1.42, FXRate: 41.10}
	got := n.MarketSummary(snap)

	if !strings.Contains(got, "yükselişle") {
		t.Errorf("Expected rising phrase, got %q", got)
	}
	if !strings.Contains(got, "9850.25") || !strings.Contains(got, "41.10") {
		t.Errorf("Expected interpolated values, got %q", got)
	}
}

func TestMarketSummaryFalling(t *testing.T) {
	n := newTestNarrator()

	snap := types.MarketSnapshot{IndexClose: 9700, IndexChangePct: -0.8, FXRate: 41.2}
	got := n.MarketSummary(snap)

	if !strings.Contains(got, "düşüşle") {
		t.Errorf("Expected falling phrase, got %q", got)
	}
	if strings.Contains(got, "-0.80") {
		t.Errorf("Change percent must be absolute, got %q", got)
	}
}

func TestMarketSummaryZeroGoesFallingBranch(t *testing.T) {
	n := newTestNarrator()

	snap := types.MarketSnapshot{IndexClose: 9800, IndexChangePct: 0, FXRate: 41}
	if got := n.MarketSummary(snap); !strings.Contains(got, "düşüşle") {
		t.Errorf("Zero change must read as falling, got %q", got)
	}
}

func TestWhyThisMattersMonetaryPolicy(t *testing.T) {
	n := newTestNarrator()

	rec := types.NewsRecord{Title: "TCMB faiz kararı", Summary: ""}
	got := n.WhyThisMatters(&rec)

	if !strings.Contains(got, "Para politikası") {
		t.Errorf("Expected monetary-policy sentence, got %q", got)
	}
}

func TestWhyThisMattersPriorityOrder(t *testing.T) {
	n := newTestNarrator()

	// Both monetary-policy and earnings keywords present; the earlier
	// monetary-policy rule must win.
	rec := types.NewsRecord{Title: "Faiz kararı sonrası banka bilançoları"}
	got := n.WhyThisMatters(&rec)

	if !strings.Contains(got, "Para politikası") {
		t.Errorf("Expected first-match rule to win, got %q", got)
	}
}

func TestWhyThisMattersChecksTitleOnly(t *testing.T) {
	n := newTestNarrator()

	cfg := store.DefaultConfig()
	rec := types.NewsRecord{
		Title:   "Şirketten açıklama",
		Summary: "faiz indirimi bekleniyor",
	}
	got := n.WhyThisMatters(&rec)

	if got != cfg.Narrative.Fallback {
		t.Errorf("Summary must not be checked; expected fallback, got %q", got)
	}
}

func TestWhyThisMattersFallback(t *testing.T) {
	n := newTestNarrator()

	cfg := store.DefaultConfig()
	rec := types.NewsRecord{Title: "Yeni genel müdür atandı"}
	if got := n.WhyThisMatters(&rec); got != cfg.Narrative.Fallback {
		t.Errorf("Expected generic fallback, got %q", got)
	}
}
