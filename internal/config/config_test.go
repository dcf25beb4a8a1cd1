package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Search.Provider != "tavily" {
		t.Fatalf("unexpected provider: %s", cfg.Search.Provider)
	}
	if len(cfg.Keywords) == 0 {
		t.Fatalf("default keywords missing")
	}
	if len(cfg.TrustedSources) == 0 || cfg.TrustedSources[0].Organization != "TNFD" {
		t.Fatalf("default trusted sources missing: %+v", cfg.TrustedSources)
	}
	if len(cfg.Categories) == 0 || cfg.Categories[0].Name != "Climate Risk" {
		t.Fatalf("default category rules missing: %+v", cfg.Categories)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tv-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("DATABASE_DSN", "postgres://example")

	cfg := Load()

	if cfg.Search.APIKey != "tv-key" {
		t.Fatalf("tavily key override missing: %s", cfg.Search.APIKey)
	}
	if cfg.OpenAI.APIKey != "oa-key" {
		t.Fatalf("openai key override missing: %s", cfg.OpenAI.APIKey)
	}
	if cfg.Database.DSN != "postgres://example" {
		t.Fatalf("dsn override missing: %s", cfg.Database.DSN)
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
search:
  maxResults: 25
keywords:
  - wildfire insurance
categories:
  - name: Wildfire
    keywords: ["wildfire"]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NEWS_AGENT_CONFIG", path)

	cfg := Load()

	if cfg.Search.MaxResults != 25 {
		t.Fatalf("file override missing: %d", cfg.Search.MaxResults)
	}
	if cfg.Search.Provider != "tavily" {
		t.Fatalf("defaults must survive partial file: %s", cfg.Search.Provider)
	}
	if len(cfg.Keywords) != 1 || cfg.Keywords[0] != "wildfire insurance" {
		t.Fatalf("keyword override missing: %v", cfg.Keywords)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Name != "Wildfire" {
		t.Fatalf("category override missing: %+v", cfg.Categories)
	}
}
