package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config contains runtime settings for the alignment server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	OpenStates struct {
		APIKey string
	}
	Congress struct {
		APIKey string
	}
	Geocoder struct {
		BaseURL string // override for tests; empty uses the Census endpoint
	}

	Catalog struct {
		IssuesPath    string // empty uses the embedded catalog
		OverridesPath string // empty disables operator overrides
	}

	Bills struct {
		QueryDelay time.Duration // fixed interval between per-keyword queries
		QueryLimit int
	}

	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Bills.QueryDelay = 500 * time.Millisecond
	cfg.Bills.QueryLimit = 20

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.OpenStates.APIKey = os.Getenv("OPENSTATES_API_KEY")
	cfg.Congress.APIKey = os.Getenv("CONGRESS_API_KEY")
	cfg.Geocoder.BaseURL = os.Getenv("GEOCODER_BASE_URL")

	cfg.Catalog.IssuesPath = os.Getenv("ISSUE_CATALOG_PATH")
	cfg.Catalog.OverridesPath = os.Getenv("BILL_OVERRIDES_PATH")
	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	if v := os.Getenv("BILL_QUERY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid BILL_QUERY_DELAY %q: %w", v, err)
		}
		cfg.Bills.QueryDelay = d
	}

	var missingVars []string

	if cfg.OpenStates.APIKey == "" {
		missingVars = append(missingVars, "OPENSTATES_API_KEY")
	}
	if cfg.Congress.APIKey == "" {
		missingVars = append(missingVars, "CONGRESS_API_KEY")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
