package dto

import (
	"time"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the body for a conversion preview. FromCurrency is
// optional and defaults to the system base currency.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"omitempty,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
}

// ConvertResponse mirrors the conversion engine output.
type ConvertResponse struct {
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Fee             decimal.Decimal `json:"fee"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ToConvertResponse converts a domain.ConversionResult to its response DTO.
func ToConvertResponse(res *domain.ConversionResult) ConvertResponse {
	return ConvertResponse{
		OriginalAmount:  res.OriginalAmount,
		ConvertedAmount: res.ConvertedAmount,
		ExchangeRate:    res.ExchangeRate,
		Fee:             res.Fee,
		FromCurrency:    res.FromCurrency,
		ToCurrency:      res.ToCurrency,
		Timestamp:       res.Timestamp,
	}
}
