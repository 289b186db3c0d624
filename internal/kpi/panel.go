// Package kpi projects a KPI record into labeled, formatted display
// fields for the dashboard panel.
package kpi

import (
	"fmt"

	"StockDash/internal/format"
	"StockDash/internal/model"
)

// Trend classifies the daily move. It is derived once from the daily
// change so the change and percent fields can never disagree on sign.
type Trend int

const (
	TrendNegative Trend = iota
	TrendPositive
)

// Field is one labeled panel entry.
type Field struct {
	Label string
	Value string
}

// Panel is the display model for one KPI record.
type Panel struct {
	CurrentPrice   string
	DailyChange    string
	DailyChangePct string
	Trend          Trend
	High52w        string
	Low52w         string
	AvgVolume      string
	MarketCap      string
}

// Build projects a KPI record into a Panel. A nil record yields a nil
// panel: the caller renders nothing rather than placeholder zeros.
func Build(k *model.KPIs) *Panel {
	if k == nil {
		return nil
	}

	trend := TrendNegative
	sign := ""
	if k.DailyChange >= 0 {
		trend = TrendPositive
		sign = "+"
	}

	avgVolume := float64(k.AvgVolume)
	return &Panel{
		CurrentPrice:   format.Price(k.CurrentPrice),
		DailyChange:    fmt.Sprintf("%s%.2f", sign, k.DailyChange),
		DailyChangePct: fmt.Sprintf("%s%.2f%%", sign, k.DailyChangePct),
		Trend:          trend,
		High52w:        formatNullablePrice(k.FiftyTwoWeekHigh),
		Low52w:         formatNullablePrice(k.FiftyTwoWeekLow),
		AvgVolume:      format.CompactVolume(&avgVolume),
		MarketCap:      format.CompactCurrency(k.MarketCap),
	}
}

// Rows returns the panel fields in display order.
func (p *Panel) Rows() []Field {
	return []Field{
		{"Current Price", p.CurrentPrice},
		{"Daily Change", fmt.Sprintf("%s (%s)", p.DailyChange, p.DailyChangePct)},
		{"52W High", p.High52w},
		{"52W Low", p.Low52w},
		{"Avg Volume", p.AvgVolume},
		{"Market Cap", p.MarketCap},
	}
}

func formatNullablePrice(v *float64) string {
	if v == nil {
		return format.NotAvailable
	}
	return format.Price(*v)
}
