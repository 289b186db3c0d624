package server

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"
)

// stubTransport serves a canned body for any request.
type stubTransport struct {
	status int
	body   string
}

func (s *stubTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
		Header:     make(http.Header),
	}, nil
}

func yahooWith(body string) *YahooFetcher {
	f := NewYahooFetcher("")
	f.Client.Transport = &stubTransport{status: http.StatusOK, body: body}
	return f
}

func TestYahooFetchDailyBars(t *testing.T) {
	f := yahooWith(`{"chart":{"result":[{"timestamp":[1704153600,1704240000],
		"indicators":{"quote":[{"open":[100,104],"high":[105,106],
		"low":[99,101],"close":[104,102],"volume":[1000,2000]}]}}]}}`)

	points, err := f.FetchDailyBars("AAPL",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2024-01-02" || points[0].Close != 104 {
		t.Errorf("first point = %+v", points[0])
	}
	if points[1].Volume != 2000 {
		t.Errorf("second point volume = %d", points[1].Volume)
	}
}

func TestYahooFetchDailyBarsEmptyQuote(t *testing.T) {
	// Timestamps present but no quote block: treat as no data rather
	// than indexing into the empty array.
	f := yahooWith(`{"chart":{"result":[{"timestamp":[1704153600],
		"indicators":{"quote":[]}}]}}`)

	points, err := f.FetchDailyBars("AAPL",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points != nil {
		t.Errorf("expected no data, got %d points", len(points))
	}
}

func TestYahooFetchDailyBarsAPIError(t *testing.T) {
	f := yahooWith(`{"chart":{"result":[],"error":{"code":"Not Found",
		"description":"No data found, symbol may be delisted"}}}`)

	_, err := f.FetchDailyBars("ZZZZ",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error from chart API error payload")
	}
}
