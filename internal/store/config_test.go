package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config must validate: %v", err)
	}

	if len(cfg.Feeds) != 3 {
		t.Errorf("Expected 3 default feeds, got %d", len(cfg.Feeds))
	}
	if cfg.Selection.TopN != 3 {
		t.Errorf("Expected top_n 3, got %d", cfg.Selection.TopN)
	}
	if cfg.Selection.WindowHours != 18 {
		t.Errorf("Expected 18h window, got %v", cfg.Selection.WindowHours)
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("Expected 15m cache TTL, got %d", cfg.Cache.TTLMinutes)
	}
	if len(cfg.Narrative.Rules) != 4 {
		t.Errorf("Expected 4 narrative rules, got %d", len(cfg.Narrative.Rules))
	}
	if cfg.Narrative.Rules[0].Name != "monetary_policy" {
		t.Errorf("Expected monetary_policy rule first, got %s", cfg.Narrative.Rules[0].Name)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Missing file should fall back to defaults: %v", err)
	}
	if cfg.Market.IndexSymbol != "XU100.IS" {
		t.Errorf("Expected default index symbol, got %s", cfg.Market.IndexSymbol)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "selection:\n  top_n: 5\noutput:\n  dir: exports\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Selection.TopN != 5 {
		t.Errorf("Expected overridden top_n 5, got %d", cfg.Selection.TopN)
	}
	if cfg.Output.Dir != "exports" {
		t.Errorf("Expected overridden output dir, got %s", cfg.Output.Dir)
	}
	// Untouched sections keep their defaults.
	if len(cfg.Scoring.HighKeywords) == 0 {
		t.Error("Expected default high keywords to survive partial override")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("feeds: [not: a: map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no feeds", func(c *Config) { c.Feeds = nil }},
		{"no keywords", func(c *Config) {
			c.Scoring.HighKeywords = nil
			c.Scoring.MediumKeywords = nil
		}},
		{"zero top_n", func(c *Config) { c.Selection.TopN = 0 }},
		{"negative window", func(c *Config) { c.Selection.WindowHours = -1 }},
		{"no index symbol", func(c *Config) { c.Market.IndexSymbol = "" }},
		{"no output dir", func(c *Config) { c.Output.Dir = "" }},
	}

	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
