// Package chart owns the live candlestick chart: a disposable handle
// bound to one dataset snapshot, and the manager that enforces the
// single-handle lifecycle.
package chart

import (
	"StockDash/internal/model"
	"StockDash/internal/series"
)

// Handle is the live chart instance. It is bound to exactly one
// dataset snapshot and one viewport size, and is exclusively owned by
// the Manager: nothing else constructs, mutates, or disposes it.
type Handle struct {
	ticker   string
	price    []series.PricePoint
	volume   []series.VolumePoint
	width    int
	height   int
	disposed bool
}

func newHandle(resp *model.StockResponse, width, height int) *Handle {
	price, volume := series.Build(resp.Data)
	return &Handle{
		ticker: resp.Ticker,
		price:  price,
		volume: volume,
		width:  width,
		height: height,
	}
}

// SetSize adjusts the viewport without touching the series data. Resize
// is a side effect on the live handle, never a rebuild.
func (h *Handle) SetSize(width, height int) {
	if h.disposed {
		return
	}
	h.width = width
	h.height = height
}

// Len reports the number of candles bound to the handle.
func (h *Handle) Len() int { return len(h.price) }

// Ticker reports the symbol the handle is bound to.
func (h *Handle) Ticker() string { return h.ticker }

// Dispose releases the handle. Safe to call more than once.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.price = nil
	h.volume = nil
}

// Disposed reports whether the handle has been released.
func (h *Handle) Disposed() bool { return h.disposed }

// View renders the candlestick canvas with the volume histogram in the
// lower rows. A disposed handle renders nothing.
func (h *Handle) View() string {
	if h.disposed {
		return ""
	}
	return render(h)
}
