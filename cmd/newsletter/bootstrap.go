package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/frnietz/newsletter-tr/internal/bulletin"
	"github.com/frnietz/newsletter-tr/internal/export"
	"github.com/frnietz/newsletter-tr/internal/feed"
	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/market"
	"github.com/frnietz/newsletter-tr/internal/store"
	"github.com/frnietz/newsletter-tr/internal/types"
	"github.com/frnietz/newsletter-tr/internal/ui"
)

// app holds the wired pipeline for one process.
type app struct {
	cfg      *store.Config
	analyzer *bulletin.Analyzer
	exporter *export.Exporter
}

// bootstrap loads env and config, initializes logging, and wires the
// fetchers, analyzer, and exporter.
func bootstrap(ctx context.Context, configPath string) (*app, error) {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := store.LoadConfig(configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", configPath)
		return nil, err
	}
	logger.Info(ctx, "Config loaded", "path", configPath, "feeds", len(cfg.Feeds), "top_n", cfg.Selection.TopN)

	clock := types.SystemClock()
	news := feed.NewFetcher(cfg, clock)
	quotes := market.NewFetcher(cfg, clock)

	return &app{
		cfg:      cfg,
		analyzer: bulletin.NewAnalyzer(cfg, news, quotes, clock),
		exporter: export.NewExporter(cfg),
	}, nil
}

// runFetch runs one pipeline cycle and renders the dashboard.
func (a *app) runFetch(ctx context.Context) error {
	b, err := a.analyzer.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderDashboard(b))
	return nil
}

// runExport runs one cycle, renders the dashboard, and writes both export
// documents.
func (a *app) runExport(ctx context.Context) error {
	b, err := a.analyzer.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderDashboard(b))

	mdPath, pdfPath, err := a.exporter.Export(ctx, b)
	if err != nil {
		return err
	}
	fmt.Printf("Files generated:\n  %s\n  %s\n", mdPath, pdfPath)
	return nil
}
