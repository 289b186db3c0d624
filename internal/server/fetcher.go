// Package server implements the stock data provider: market data
// fetchers, KPI assembly, and the HTTP API the dashboard talks to.
package server

import (
	"time"

	"StockDash/internal/model"
)

// Quote carries the externally known per-ticker figures that cannot be
// derived from a short data window. Any field may be nil.
type Quote struct {
	MarketCap        *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(ticker string, start, end time.Time) ([]model.StockDataPoint, error)
	FetchQuote(ticker string) (*Quote, error)
	Name() string
}
