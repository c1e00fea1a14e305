package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeBuy     TransactionType = "BUY"
	TransactionTypeSell    TransactionType = "SELL"
	TransactionTypeConvert TransactionType = "CONVERT"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeConvert:
		return true
	}
	return false
}

// TransactionStatusCompleted is the default status for a recorded transaction.
const TransactionStatusCompleted = "COMPLETED"

// Transaction is one immutable ledger row recording a conversion for a user.
// ExchangeRate and ConvertedAmount are frozen at creation time; later rate
// changes never affect a recorded transaction.
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"userId"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`          // 2 fractional digits
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`    // rate snapshot, 6 fractional digits
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // net of fee, 2 fractional digits
	Fee             decimal.Decimal `json:"fee"`             // 2 fractional digits, non-negative
	Type            TransactionType `json:"type"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
