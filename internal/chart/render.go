package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"StockDash/internal/series"
)

var (
	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(series.UpColor))
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(series.DownColor))
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	bodyGlyph   = "█"
	wickGlyph   = "│"
	volumeGlyph = "▃"
)

func styleFor(color string) lipgloss.Style {
	if color == series.UpColor {
		return upStyle
	}
	return downStyle
}

// render paints the full data extent into the handle's viewport: price
// candles in the upper rows, the volume histogram confined to the lower
// ~20%, and a date axis at the bottom.
func render(h *Handle) string {
	if h.width < 4 || h.height < 5 || len(h.price) == 0 {
		return ""
	}

	volumeRows := h.height / 5
	if volumeRows < 1 {
		volumeRows = 1
	}
	priceRows := h.height - volumeRows - 1

	lo, hi := priceExtent(h.price)
	if hi <= lo {
		hi = lo + 1
	}

	cols := len(h.price)
	if cols > h.width {
		cols = h.width
	}

	grid := make([][]string, priceRows+volumeRows)
	for r := range grid {
		row := make([]string, cols)
		for c := range row {
			row[c] = " "
		}
		grid[r] = row
	}

	maxVolume := int64(0)
	for _, v := range h.volume {
		if v.Value > maxVolume {
			maxVolume = v.Value
		}
	}

	// Map price p into a row index, row 0 being the top of the canvas.
	toRow := func(p float64) int {
		r := priceRows - 1 - int((p-lo)/(hi-lo)*float64(priceRows-1)+0.5)
		if r < 0 {
			r = 0
		}
		if r >= priceRows {
			r = priceRows - 1
		}
		return r
	}

	for col := 0; col < cols; col++ {
		// One candle per column; when the extent exceeds the viewport
		// width, stride-sample candles. Display-only: the series stay
		// untouched.
		idx := col * len(h.price) / cols
		c := h.price[idx]
		style := styleFor(h.volume[idx].Color)

		bodyTop := toRow(maxFloat(c.Open, c.Close))
		bodyBot := toRow(minFloat(c.Open, c.Close))
		for r := toRow(c.High); r < bodyTop; r++ {
			grid[r][col] = style.Render(wickGlyph)
		}
		for r := bodyTop; r <= bodyBot; r++ {
			grid[r][col] = style.Render(bodyGlyph)
		}
		for r := bodyBot + 1; r <= toRow(c.Low); r++ {
			grid[r][col] = style.Render(wickGlyph)
		}

		if maxVolume > 0 {
			v := h.volume[idx]
			bars := int(float64(v.Value) / float64(maxVolume) * float64(volumeRows))
			if bars == 0 && v.Value > 0 {
				bars = 1
			}
			vs := styleFor(v.Color)
			for r := 0; r < bars; r++ {
				grid[priceRows+volumeRows-1-r][col] = vs.Render(volumeGlyph)
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(axisLine(h, cols)))
	return b.String()
}

func axisLine(h *Handle, cols int) string {
	first := h.price[0].Time
	last := h.price[len(h.price)-1].Time
	gap := cols - len(first) - len(last)
	if gap < 1 {
		return first
	}
	return first + strings.Repeat(" ", gap) + last
}

func priceExtent(price []series.PricePoint) (lo, hi float64) {
	lo = price[0].Low
	hi = price[0].High
	for _, p := range price[1:] {
		if p.Low < lo {
			lo = p.Low
		}
		if p.High > hi {
			hi = p.High
		}
	}
	return lo, hi
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
