package model

// StockDataPoint is one trading day of OHLCV data. Dates are calendar
// days encoded as "2006-01-02" and arrive in ascending order.
type StockDataPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// KPIs is the derived summary over one response window. Nullable fields
// stay nil when the provider has insufficient history or no share count.
type KPIs struct {
	CurrentPrice     float64  `json:"current_price"`
	DailyChange      float64  `json:"daily_change"`
	DailyChangePct   float64  `json:"daily_change_pct"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low"`
	AvgVolume        int64    `json:"avg_volume"`
	MarketCap        *float64 `json:"market_cap"`
}

// StockRequest is the dashboard's request to the data provider.
type StockRequest struct {
	Ticker    string `json:"ticker"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// StockResponse fully replaces any prior dataset; there is no merge.
type StockResponse struct {
	Ticker string           `json:"ticker"`
	Data   []StockDataPoint `json:"data"`
	KPIs   *KPIs            `json:"kpis"`
}
