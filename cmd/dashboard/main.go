package main

import (
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"StockDash/internal/config"
	"StockDash/internal/provider"
	"StockDash/internal/tui"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// bubbletea owns stdout; route debug logging to a file when asked.
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("stockdash_debug.log", "debug")
		if err != nil {
			log.Fatalf("[FATAL] open debug log: %v", err)
		}
		defer f.Close()
	}

	timeout := time.Duration(cfg.Dashboard.RequestTimeout) * time.Second
	client := provider.NewClient(cfg.Dashboard.APIBaseURL, timeout, cfg.Proxy)

	m := tui.New(client, timeout, cfg.Dashboard.DefaultTicker)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("[FATAL] dashboard: %v", err)
	}
}
