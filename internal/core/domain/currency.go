package domain

import "time"

// BaseCurrencyCode is the system base currency. Conversions default to it when
// no source currency is supplied, and currency listings always surface it first.
const BaseCurrencyCode = "ETB"

// PopularCurrencyCodes is the fixed set of target currencies summarised on the
// dashboard. Order matters only insofar as it is stable.
var PopularCurrencyCodes = []string{"USD", "EUR", "GBP", "AED", "CNY", "SAR"}

// Currency represents a supported currency in the catalog.
type Currency struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"` // 3-letter code, unique (e.g. "USD")
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
