package dto

import (
	"time"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the body for recording a conversion in the
// ledger. Type defaults to CONVERT when omitted.
type CreateTransactionRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"omitempty,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"omitempty,oneof=BUY SELL CONVERT"`
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"userId"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Fee             decimal.Decimal `json:"fee"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateTransactionResponse wraps the created row with a confirmation message.
type CreateTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		UserID:          txn.UserID,
		FromCurrency:    txn.FromCurrency,
		ToCurrency:      txn.ToCurrency,
		Amount:          txn.Amount,
		ExchangeRate:    txn.ExchangeRate,
		ConvertedAmount: txn.ConvertedAmount,
		Fee:             txn.Fee,
		Type:            string(txn.Type),
		Status:          txn.Status,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
