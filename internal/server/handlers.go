package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"StockDash/internal/calculator"
	"StockDash/internal/model"
)

const dateLayout = "2006-01-02"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	fetcher Fetcher
	shares  map[string]float64
	log     *logrus.Logger
}

// NewHandler creates a new Handler. shares maps tickers to known
// shares outstanding, used as a market-cap fallback when the quote has
// none.
func NewHandler(fetcher Fetcher, shares map[string]float64, log *logrus.Logger) *Handler {
	return &Handler{fetcher: fetcher, shares: shares, log: log}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetStockData handles POST /api/stock-data: fetch the OHLCV window,
// derive the KPI record, and return the full response.
func (h *Handler) GetStockData(w http.ResponseWriter, r *http.Request) {
	var req model.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Ticker = strings.ToUpper(strings.TrimSpace(req.Ticker))
	if req.Ticker == "" || req.StartDate == "" || req.EndDate == "" {
		respondError(w, http.StatusBadRequest, "ticker, start_date and end_date are required")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		respondError(w, http.StatusBadRequest, "start_date must be before end_date")
		return
	}

	points, err := h.fetcher.FetchDailyBars(req.Ticker, start, end)
	if err != nil {
		h.log.WithField("ticker", req.Ticker).WithError(err).Error("fetch daily bars")
		respondError(w, http.StatusBadGateway, "failed to fetch data from market data source")
		return
	}
	if len(points) == 0 {
		respondError(w, http.StatusNotFound,
			fmt.Sprintf("No data found for ticker '%s' in the specified date range", req.Ticker))
		return
	}

	kpis, err := h.assembleKPIs(req.Ticker, points)
	if err != nil {
		h.log.WithField("ticker", req.Ticker).WithError(err).Error("compute kpis")
		respondError(w, http.StatusInternalServerError, "failed to compute KPIs")
		return
	}

	h.log.WithFields(logrus.Fields{
		"ticker": req.Ticker,
		"points": len(points),
	}).Info("stock data served")

	respondJSON(w, http.StatusOK, &model.StockResponse{
		Ticker: req.Ticker,
		Data:   points,
		KPIs:   kpis,
	})
}

// assembleKPIs combines the window-derived figures with the quote. The
// quote is best-effort: every quote-sourced field degrades to nil, or
// to a window/config fallback where one exists.
func (h *Handler) assembleKPIs(ticker string, points []model.StockDataPoint) (*model.KPIs, error) {
	quote, err := h.fetcher.FetchQuote(ticker)
	if err != nil {
		h.log.WithField("ticker", ticker).WithError(err).Warn("quote unavailable")
		quote = &Quote{}
	}

	high52 := quote.FiftyTwoWeekHigh
	low52 := quote.FiftyTwoWeekLow
	if high52 == nil && low52 == nil && len(points) >= calculator.TradingDaysPerYear {
		if hi, lo, err := calculator.Range52Week(points); err == nil {
			high52, low52 = &hi, &lo
		}
	}

	marketCap := quote.MarketCap
	if marketCap == nil {
		if shares, ok := h.shares[ticker]; ok {
			mc := calculator.Round2(shares * points[len(points)-1].Close)
			marketCap = &mc
		}
	}

	return calculator.ComputeKPIs(points, high52, low52, marketCap)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes the structured {detail} failure body the
// dashboard surfaces verbatim.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
