package domain

import "github.com/shopspring/decimal"

// FormatCost renders a cost the way checkout shows it, e.g. "€11.50".
func FormatCost(cost float64) string {
	return "€" + decimal.NewFromFloat(cost).StringFixed(2)
}
