// Package provider is the HTTP client for the stock data provider.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"StockDash/internal/model"
)

// ServerError is a structured failure reported by the provider. Its
// message is shown to the user verbatim.
type ServerError struct {
	Detail string
}

func (e *ServerError) Error() string { return e.Detail }

// Client fetches stock data from the provider's REST API.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a client with optional proxy support.
func NewClient(baseURL string, timeout time.Duration, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// FetchStockData requests the OHLCV window and KPI record for a ticker.
// The ticker is upper-cased before sending. A structured provider
// failure comes back as *ServerError; any other failure is a transport
// error.
func (c *Client) FetchStockData(ctx context.Context, req model.StockRequest) (*model.StockResponse, error) {
	req.Ticker = strings.ToUpper(strings.TrimSpace(req.Ticker))

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/stock-data", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch stock data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &fail); err == nil && fail.Detail != "" {
			return nil, &ServerError{Detail: fail.Detail}
		}
		return nil, fmt.Errorf("fetch stock data: status %d", resp.StatusCode)
	}

	var sr model.StockResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decode stock data: %w", err)
	}
	return &sr, nil
}
