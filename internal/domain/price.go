package domain

import "time"

// MarketPriceObservation is one daily close for one symbol. A date with no
// observation is unknown, never zero.
type MarketPriceObservation struct {
	Date       time.Time `json:"date"`
	Symbol     string    `json:"symbol"`
	ClosePrice float64   `json:"closePrice"`
	Currency   string    `json:"currency"`
}

// Valid reports whether the observation carries a usable price. Missing or
// zero prices from the source are treated as absent.
func (p MarketPriceObservation) Valid() bool {
	return p.ClosePrice > 0
}

// DatedValue is a generic point of a dated series (returns, drawdowns,
// rolling betas).
type DatedValue struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
