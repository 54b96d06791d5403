package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Feeds map[string]string `yaml:"feeds"`

	Scoring struct {
		HighKeywords   []string `yaml:"high_keywords"`
		MediumKeywords []string `yaml:"medium_keywords"`
		HighWeight     float64  `yaml:"high_weight"`
		MediumWeight   float64  `yaml:"medium_weight"`
		TrustedSources []string `yaml:"trusted_sources"`
		TrustBonus     float64  `yaml:"trust_bonus"`
		RecencyCapHrs  float64  `yaml:"recency_cap_hours"`
	} `yaml:"scoring"`

	Selection struct {
		TopN        int     `yaml:"top_n"`
		WindowHours float64 `yaml:"window_hours"`
	} `yaml:"selection"`

	Market struct {
		IndexSymbol string `yaml:"index_symbol"`
		FXSymbol    string `yaml:"fx_symbol"`
	} `yaml:"market"`

	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`

	Sectors map[string][]string `yaml:"sectors"`

	Sentiment struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	} `yaml:"sentiment"`

	Narrative struct {
		Rules    []NarrativeRule `yaml:"rules"`
		Fallback string          `yaml:"fallback"`
	} `yaml:"narrative"`

	Fallback struct {
		Enabled  bool   `yaml:"enabled"`
		Source   string `yaml:"source"`
		URL      string `yaml:"url"`
		Selector string `yaml:"selector"`
	} `yaml:"fallback"`

	Output struct {
		Dir          string `yaml:"dir"`
		MarkdownFile string `yaml:"markdown_file"`
		PDFFile      string `yaml:"pdf_file"`
	} `yaml:"output"`
}

// NarrativeRule maps a keyword group to the sentence printed when any of its
// keywords appears in an article title. Rules are evaluated in order,
// first match wins.
type NarrativeRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Sentence string   `yaml:"sentence"`
}

func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return errors.New("feeds cannot be empty")
	}
	if len(c.Scoring.HighKeywords) == 0 && len(c.Scoring.MediumKeywords) == 0 {
		return errors.New("scoring keyword lists cannot both be empty")
	}
	if c.Selection.TopN <= 0 {
		return fmt.Errorf("selection.top_n must be positive, got %d", c.Selection.TopN)
	}
	if c.Selection.WindowHours <= 0 {
		return fmt.Errorf("selection.window_hours must be positive, got %.1f", c.Selection.WindowHours)
	}
	if c.Market.IndexSymbol == "" || c.Market.FXSymbol == "" {
		return errors.New("market.index_symbol and market.fx_symbol are required")
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}
	return nil
}

// DefaultConfig returns the built-in configuration: the fixed Turkish feed
// set, keyword weights, sector groups, sentiment lists, and narrative rules.
func DefaultConfig() *Config {
	c := &Config{
		Feeds: map[string]string{
			"Bigpara":     "https://www.bigpara.com/rss/",
			"BloombergHT": "https://www.bloomberght.com/rss",
			"ReutersTR":   "https://feeds.reuters.com/reuters/TurkeyNews",
		},
		Sectors: map[string][]string{
			"Banking":    {"faiz", "tcmb", "banka", "kredi", "mevduat"},
			"Industrial": {"sanayi", "üretim", "ihracat", "fabrika"},
			"Energy":     {"enerji", "petrol", "doğalgaz", "elektrik"},
		},
	}
	c.Scoring.HighKeywords = []string{"TCMB", "faiz", "enflasyon", "Fed", "ECB", "bilanço", "KAP"}
	c.Scoring.MediumKeywords = []string{"BIST", "endeks", "döviz", "CDS", "rezerv", "petrol"}
	c.Scoring.HighWeight = 3
	c.Scoring.MediumWeight = 1
	c.Scoring.TrustedSources = []string{"ReutersTR", "BloombergHT"}
	c.Scoring.TrustBonus = 2
	c.Scoring.RecencyCapHrs = 3

	c.Selection.TopN = 3
	c.Selection.WindowHours = 18

	c.Market.IndexSymbol = "XU100.IS"
	c.Market.FXSymbol = "USDTRY=X"

	c.Cache.TTLMinutes = 15

	c.Sentiment.Positive = []string{"artış", "yükseliş", "güçlü", "rekor", "olumlu"}
	c.Sentiment.Negative = []string{"düşüş", "gerileme", "zayıf", "baskı", "risk"}

	c.Narrative.Rules = []NarrativeRule{
		{
			Name:     "monetary_policy",
			Keywords: []string{"faiz", "tcmb", "merkez bankası"},
			Sentence: "Para politikası adımları, özellikle bankacılık sektörü olmak üzere tüm piyasa değerlemelerini etkiler.",
		},
		{
			Name:     "earnings",
			Keywords: []string{"bilanço", "kar", "zarar"},
			Sentence: "Finansal sonuçlar, şirketin operasyonel gücünü ve mevcut fiyatlamaların sürdürülebilirliğini gösterir.",
		},
		{
			Name:     "global_macro",
			Keywords: []string{"fed", "abd", "enflasyon"},
			Sentence: "Küresel makro gelişmeler, gelişen piyasalara yönelik risk iştahını ve sermaye akımlarını belirler.",
		},
		{
			Name:     "commodities",
			Keywords: []string{"petrol", "emtia", "altın"},
			Sentence: "Emtia fiyatları, enflasyon beklentileri ve ilgili sektörler üzerinde belirleyici rol oynar.",
		},
	}
	c.Narrative.Fallback = "Bu gelişme, yatırımcı algısı ve piyasa beklentileri açısından önem taşıyor."

	c.Fallback.Enabled = false
	c.Fallback.Source = "BigparaWeb"
	c.Fallback.URL = "https://www.bigpara.com/haberler/"
	c.Fallback.Selector = "div.news-list li"

	c.Output.Dir = "output"
	c.Output.MarkdownFile = "newsletter.md"
	c.Output.PDFFile = "newsletter.pdf"

	return c
}

// LoadConfig reads the YAML config at path, filling anything the file leaves
// out from DefaultConfig. A missing file yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	if c.Selection.TopN == 0 {
		c.Selection.TopN = 3
	}
	if c.Selection.WindowHours == 0 {
		c.Selection.WindowHours = 18
	}
	if c.Cache.TTLMinutes == 0 {
		c.Cache.TTLMinutes = 15
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return c, nil
}
