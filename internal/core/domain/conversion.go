package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business constants for conversion math. Kept as named values so tests can
// assert on them directly.
var (
	// FeeRate is the flat conversion fee taken from the gross converted amount.
	FeeRate = decimal.RequireFromString("0.01")
)

const (
	// AmountPrecision is the number of fractional digits for currency amounts.
	AmountPrecision = 2
	// RatePrecision is the number of fractional digits for exchange rates.
	RatePrecision = 6
)

// ConversionResult is the outcome of a pure conversion computation. Values are
// exact; rounding to AmountPrecision happens only when a ledger row is written.
type ConversionResult struct {
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // net of fee
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Fee             decimal.Decimal `json:"fee"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Timestamp       time.Time       `json:"timestamp"` // instant of computation, not the rate's recorded time
}
