package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockDash/internal/model"
)

// UpstreamFetcher implements Fetcher against an internal market data
// REST service, for deployments that cannot reach Yahoo directly.
type UpstreamFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewUpstreamFetcher creates a new fetcher with optional proxy support.
func NewUpstreamFetcher(baseURL, apiKey, proxyURL string) *UpstreamFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &UpstreamFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *UpstreamFetcher) Name() string { return "upstream" }

// upstreamBar is the expected JSON shape from the upstream API.
type upstreamBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// FetchDailyBars returns one bar per trading day in [start, end].
func (f *UpstreamFetcher) FetchDailyBars(ticker string, start, end time.Time) ([]model.StockDataPoint, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&start=%s&end=%s",
		f.BaseURL, url.QueryEscape(ticker),
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var bars []upstreamBar
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}

	points := make([]model.StockDataPoint, len(bars))
	for i, b := range bars {
		points[i] = model.StockDataPoint{
			Date:   time.Unix(b.Timestamp, 0).UTC().Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// FetchQuote returns market cap and 52-week range for a ticker.
func (f *UpstreamFetcher) FetchQuote(ticker string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", f.BaseURL, url.QueryEscape(ticker))
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch quote: status %d", resp.StatusCode)
	}

	var result struct {
		MarketCap *float64 `json:"market_cap"`
		High52w   *float64 `json:"high_52w"`
		Low52w    *float64 `json:"low_52w"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	return &Quote{
		MarketCap:        result.MarketCap,
		FiftyTwoWeekHigh: result.High52w,
		FiftyTwoWeekLow:  result.Low52w,
	}, nil
}
