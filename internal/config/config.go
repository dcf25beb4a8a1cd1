package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "NEWS_AGENT_CONFIG"
	tavilyAPIKeyEnv = "TAVILY_API_KEY"
	openAIAPIKeyEnv = "OPENAI_API_KEY"
	openAIModelEnv  = "OPENAI_MODEL"
	databaseDSNEnv  = "DATABASE_DSN"
	apiAddrEnv      = "API_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging        LoggingConfig         `yaml:"logging"`
	Search         SearchConfig          `yaml:"search"`
	OpenAI         OpenAIConfig          `yaml:"openai"`
	Database       DatabaseConfig        `yaml:"database"`
	API            APIConfig             `yaml:"api"`
	Keywords       []string              `yaml:"keywords"`
	TrustedSources []TrustedSourceConfig `yaml:"trustedSources"`
	Categories     []CategoryRuleConfig  `yaml:"categories"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SearchConfig selects and parameterizes the search provider.
type SearchConfig struct {
	Provider   string `yaml:"provider"`
	Endpoint   string `yaml:"endpoint"`
	APIKey     string `yaml:"apiKey"`
	MaxResults int    `yaml:"maxResults"`
}

// OpenAIConfig defines how to contact the completion API.
type OpenAIConfig struct {
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"apiKey"`
	Temperature float64 `yaml:"temperature"`
}

// DatabaseConfig describes the optional Postgres connection used by the
// read-side API. An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// APIConfig controls the HTTP surface consumed by the dashboard.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// TrustedSourceConfig maps an organization to its domain substrings.
// Declaration order is preserved in reference tagging.
type TrustedSourceConfig struct {
	Organization string   `yaml:"organization"`
	Domains      []string `yaml:"domains"`
}

// CategoryRuleConfig declares one ordered classification rule.
type CategoryRuleConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(tavilyAPIKeyEnv); v != "" {
		c.Search.APIKey = v
	}

	if v := os.Getenv(openAIAPIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}

	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(apiAddrEnv); v != "" {
		c.API.Addr = v
		c.API.Enabled = true
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Search.Provider != "" {
		base.Search.Provider = override.Search.Provider
	}
	if override.Search.Endpoint != "" {
		base.Search.Endpoint = override.Search.Endpoint
	}
	if override.Search.APIKey != "" {
		base.Search.APIKey = override.Search.APIKey
	}
	if override.Search.MaxResults > 0 {
		base.Search.MaxResults = override.Search.MaxResults
	}

	if override.OpenAI.BaseURL != "" {
		base.OpenAI.BaseURL = override.OpenAI.BaseURL
	}
	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}
	if override.OpenAI.Temperature > 0 {
		base.OpenAI.Temperature = override.OpenAI.Temperature
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.API.Addr != "" {
		base.API = override.API
	}

	if len(override.Keywords) > 0 {
		base.Keywords = override.Keywords
	}
	if len(override.TrustedSources) > 0 {
		base.TrustedSources = override.TrustedSources
	}
	if len(override.Categories) > 0 {
		base.Categories = override.Categories
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Search: SearchConfig{
			Provider:   "tavily",
			Endpoint:   "https://api.tavily.com/search",
			MaxResults: 10,
		},
		OpenAI: OpenAIConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.4,
		},
		API: APIConfig{Addr: ":8080"},
		Keywords: []string{
			"climate change",
			"insurance market",
			"reinsurance",
			"insurtech",
			"loss ratio",
			"insurance regulation",
		},
		TrustedSources: []TrustedSourceConfig{
			{Organization: "TNFD", Domains: []string{"tnfd.global"}},
			{Organization: "IPCC", Domains: []string{"ipcc.ch"}},
			{Organization: "Swiss Re", Domains: []string{"swissre.com"}},
		},
		Categories: []CategoryRuleConfig{
			{Name: "Climate Risk", Keywords: []string{"climate change"}},
			{Name: "Insurance Exposures", Keywords: []string{"insured loss"}},
			{Name: "InsurTech", Keywords: []string{"insurtech"}},
		},
	}
}
