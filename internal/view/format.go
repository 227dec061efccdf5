package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// currencySymbol matches the shop's display currency.
const currencySymbol = "৳"

// FormatCurrency renders an amount as the UI shows it: symbol, grouped
// thousands, two decimals. Deterministic for a given input.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := currencySymbol + b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatDate renders a backend timestamp as the short date the tables
// show. Unparseable input is passed through unchanged rather than
// erroring out mid-render.
func FormatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}

// FormatPercent renders a discount or growth percentage with one
// decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
