package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Dashboard.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q", cfg.Dashboard.APIBaseURL)
	}
	if cfg.Dashboard.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d", cfg.Dashboard.RequestTimeout)
	}
	if cfg.Dashboard.DefaultTicker != "AAPL" {
		t.Errorf("DefaultTicker = %q", cfg.Dashboard.DefaultTicker)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  listen_addr: ":9001"
data_source:
  base_url: "http://bars.internal"
  api_key: "secret"
  shares_outstanding:
    AAPL: 15200000000
dashboard:
  api_base_url: "http://api.internal:9001"
  request_timeout_seconds: 10
  default_ticker: "MSFT"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != ":9001" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.DataSource.BaseURL != "http://bars.internal" {
		t.Errorf("BaseURL = %q", cfg.DataSource.BaseURL)
	}
	if cfg.DataSource.SharesOutstanding["AAPL"] != 15200000000 {
		t.Errorf("SharesOutstanding = %v", cfg.DataSource.SharesOutstanding)
	}
	if cfg.Dashboard.RequestTimeout != 10 || cfg.Dashboard.DefaultTicker != "MSFT" {
		t.Errorf("dashboard = %+v", cfg.Dashboard)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config must not validate")
	}
}
