package dto

import (
	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a catalog entry.
type CurrencyResponse struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:     curr.ID,
		Code:   curr.Code,
		Name:   curr.Name,
		Symbol: curr.Symbol,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
