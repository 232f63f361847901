package main

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// formatPrice keeps sub-cent precision; venture-exchange tickers often trade
// below one cent.
func formatPrice(p float64) string {
	if math.Abs(p) < 1 {
		return strconv.FormatFloat(p, 'f', 4, 64)
	}
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// formatValue renders an amount in currency using the currency's minor unit
// and symbol. Unknown currency codes fall back to two decimals.
func formatValue(amount float64, currency string) string {
	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}
	minor := int64(math.Round(amount * math.Pow10(fraction)))
	return money.New(minor, currency).Display()
}
