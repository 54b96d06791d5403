// Package ui renders the bulletin as a styled terminal dashboard: market
// snapshot, sector heat indicator, and the ranked news list.
package ui

import (
	"fmt"
	"strings"

	"github.com/frnietz/newsletter-tr/internal/bulletin"
	"github.com/frnietz/newsletter-tr/internal/types"
)

var heatEmoji = map[types.HeatLevel]string{
	types.HeatPositive: "🔥",
	types.HeatNegative: "❄️",
	types.HeatNeutral:  "➖",
}

// RenderDashboard produces the full dashboard string for one bulletin.
func RenderDashboard(b *bulletin.Bulletin) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("📈 Turkish Market Daily Newsletter"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(b.Date.Format("02 January 2006 15:04")))
	sb.WriteString("\n\n")

	renderSnapshot(&sb, b)
	renderHeat(&sb, b)
	renderNews(&sb, b)

	return sb.String()
}

func renderSnapshot(sb *strings.Builder, b *bulletin.Bulletin) {
	sb.WriteString(sectionStyle.Render("📊 Market Snapshot"))
	sb.WriteString("\n")

	change := fmt.Sprintf("%+.2f%%", b.Snapshot.IndexChangePct)
	mood := "Negative"
	moodStyle := fallingStyle
	if b.Snapshot.IndexChangePct > 0 {
		mood = "Positive"
		moodStyle = risingStyle
	}

	fmt.Fprintf(sb, "  BIST 100     %.2f  %s\n", b.Snapshot.IndexClose, moodStyle.Render(change))
	fmt.Fprintf(sb, "  USD/TRY      %.2f\n", b.Snapshot.FXRate)
	fmt.Fprintf(sb, "  Market Mood  %s\n\n", moodStyle.Render(mood))
}

func renderHeat(sb *strings.Builder, b *bulletin.Bulletin) {
	sb.WriteString(sectionStyle.Render("🌡️ Sector Heat Indicator"))
	sb.WriteString("\n")

	for _, sector := range types.HeatSectors {
		level := b.Heat[sector]
		style := neutralStyle
		switch level {
		case types.HeatPositive:
			style = risingStyle
		case types.HeatNegative:
			style = fallingStyle
		}
		fmt.Fprintf(sb, "  %-12s %s %s\n", sector, heatEmoji[level], style.Render(string(level)))
	}
	sb.WriteString("\n")
}

func renderNews(sb *strings.Builder, b *bulletin.Bulletin) {
	fmt.Fprintf(sb, "%s\n", sectionStyle.Render(fmt.Sprintf("📰 Top %d News", len(b.TopNews))))

	for i, rec := range b.TopNews {
		fmt.Fprintf(sb, "%s\n", titleStyle.Render(fmt.Sprintf("%d. %s", i+1, rec.Title)))
		if rec.Summary != "" {
			fmt.Fprintf(sb, "   %s\n", rec.Summary)
		}

		sectors := make([]string, len(rec.Sectors))
		for j, s := range rec.Sectors {
			sectors[j] = string(s)
		}
		fmt.Fprintf(sb, "   Sector Impact: %s\n", neutralStyle.Render(strings.Join(sectors, ", ")))
		fmt.Fprintf(sb, "   Why this matters: %s\n", b.Rationales[i])
		fmt.Fprintf(sb, "   %s | %s\n\n",
			sourceStyle.Render("Source: "+rec.Source),
			scoreStyle.Render(fmt.Sprintf("Score: %.2f", rec.Score)))
	}

	sb.WriteString(sectionStyle.Render("📄 Piyasa Özeti"))
	sb.WriteString("\n  " + b.Summary + "\n")
}
