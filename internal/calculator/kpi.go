// Package calculator derives the KPI record served alongside a data
// window.
package calculator

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"StockDash/internal/model"
)

// TradingDaysPerYear is the scan depth for the 52-week range.
const TradingDaysPerYear = 252

// Round2 rounds a money value to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ComputeKPIs derives the KPI record for a data window. The 52-week
// range and market cap are externally known and may be nil. With fewer
// than two points the daily change is zero.
func ComputeKPIs(points []model.StockDataPoint, high52, low52, marketCap *float64) (*model.KPIs, error) {
	if len(points) == 0 {
		return nil, errors.New("no data points provided")
	}

	last := points[len(points)-1].Close
	prev := last
	if len(points) >= 2 {
		prev = points[len(points)-2].Close
	}

	change := Round2(last - prev)
	pct := 0.0
	if prev != 0 {
		pct = Round2(change / prev * 100)
	}

	return &model.KPIs{
		CurrentPrice:     last,
		DailyChange:      change,
		DailyChangePct:   pct,
		FiftyTwoWeekHigh: high52,
		FiftyTwoWeekLow:  low52,
		AvgVolume:        AvgVolume(points),
		MarketCap:        marketCap,
	}, nil
}

// AvgVolume returns the mean volume over the window, truncated to an
// integer share count.
func AvgVolume(points []model.StockDataPoint) int64 {
	if len(points) == 0 {
		return 0
	}
	sum := int64(0)
	for _, p := range points {
		sum += p.Volume
	}
	return sum / int64(len(points))
}

// Range52Week scans the most recent 252 points and returns the high
// and low.
func Range52Week(points []model.StockDataPoint) (high, low float64, err error) {
	if len(points) == 0 {
		return 0, 0, errors.New("no data points provided")
	}
	n := len(points)
	start := n - TradingDaysPerYear
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if points[i].High > high {
			high = points[i].High
		}
		if points[i].Low < low {
			low = points[i].Low
		}
	}
	return high, low, nil
}
