package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one append-only observation of a currency pair's rate.
// Multiple rows may exist for the same pair; the newest RecordedAt wins, with
// the highest ID breaking ties.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"` // positive, 6 fractional digits
	RecordedAt     time.Time       `json:"recordedAt"`
}
