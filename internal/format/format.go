// Package format renders magnitude-bearing numbers as human-scaled
// display strings for the dashboard.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// NotAvailable is shown for values the provider could not supply.
const NotAvailable = "N/A"

// tier is one rung of a magnitude ladder. Ladders are ordered
// high-to-low and evaluated first-match-wins, so a value is scaled by
// exactly one tier.
type tier struct {
	threshold float64
	divisor   float64
	suffix    string
}

var currencyTiers = []tier{
	{1e12, 1e12, "T"},
	{1e9, 1e9, "B"},
	{1e6, 1e6, "M"},
}

var volumeTiers = []tier{
	{1e9, 1e9, "B"},
	{1e6, 1e6, "M"},
	{1e3, 1e3, "K"},
}

// CompactCurrency formats a dollar amount with a T/B/M suffix and two
// decimals. Values below one million are comma-grouped with no currency
// prefix; nil values render as "N/A".
func CompactCurrency(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	for _, t := range currencyTiers {
		if *v >= t.threshold {
			return fmt.Sprintf("$%.2f%s", *v/t.divisor, t.suffix)
		}
	}
	return humanize.Commaf(*v)
}

// CompactVolume formats a share count with a B/M/K suffix at one
// decimal. Values below one thousand are comma-grouped; nil values
// render as "N/A".
func CompactVolume(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	for _, t := range volumeTiers {
		if *v >= t.threshold {
			return fmt.Sprintf("%.1f%s", *v/t.divisor, t.suffix)
		}
	}
	return humanize.Commaf(*v)
}

// Price formats a per-share price at fixed two-decimal precision.
func Price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
