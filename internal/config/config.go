package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration, shared by the server and
// dashboard binaries.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		// SharesOutstanding maps tickers to known share counts, used
		// as a market-cap fallback when the quote has none.
		SharesOutstanding map[string]float64 `yaml:"shares_outstanding"`
	} `yaml:"data_source"`
	Dashboard struct {
		APIBaseURL     string `yaml:"api_base_url"`
		RequestTimeout int    `yaml:"request_timeout_seconds"`
		DefaultTicker  string `yaml:"default_ticker"`
	} `yaml:"dashboard"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.Dashboard.APIBaseURL = v
	}
	if v := os.Getenv("DEFAULT_TICKER"); v != "" {
		cfg.Dashboard.DefaultTicker = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dashboard.RequestTimeout = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8000"
	}
	if cfg.Dashboard.APIBaseURL == "" {
		cfg.Dashboard.APIBaseURL = "http://localhost:8000"
	}
	if cfg.Dashboard.RequestTimeout == 0 {
		cfg.Dashboard.RequestTimeout = 30
	}
	if cfg.Dashboard.DefaultTicker == "" {
		cfg.Dashboard.DefaultTicker = "AAPL"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if c.Dashboard.APIBaseURL == "" {
		return fmt.Errorf("dashboard.api_base_url is required")
	}
	if c.Dashboard.RequestTimeout <= 0 {
		return fmt.Errorf("dashboard.request_timeout_seconds must be positive")
	}
	return nil
}
