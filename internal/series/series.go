// Package series converts raw stock data points into chart-ready
// price and volume series.
package series

import "StockDash/internal/model"

// Candlestick colors, shared by the volume histogram.
const (
	UpColor   = "#26a69a"
	DownColor = "#ef5350"
)

// PricePoint is one candle of the price series.
type PricePoint struct {
	Time  string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// VolumePoint is one bar of the volume histogram, colored per bar by
// that day's direction.
type VolumePoint struct {
	Time  string
	Value int64
	Color string
}

// Build maps each data point to exactly one entry in each output
// series, preserving order. The caller guarantees date-ascending input;
// no re-sorting, aggregation, or gap-filling happens here. A day with
// close >= open counts as up, so flat days color up.
func Build(points []model.StockDataPoint) ([]PricePoint, []VolumePoint) {
	price := make([]PricePoint, len(points))
	volume := make([]VolumePoint, len(points))
	for i, p := range points {
		price[i] = PricePoint{
			Time:  p.Date,
			Open:  p.Open,
			High:  p.High,
			Low:   p.Low,
			Close: p.Close,
		}
		color := DownColor
		if p.Close >= p.Open {
			color = UpColor
		}
		volume[i] = VolumePoint{
			Time:  p.Date,
			Value: p.Volume,
			Color: color,
		}
	}
	return price, volume
}
