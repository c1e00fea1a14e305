package repositories

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// CurrencyRepository defines persistence operations for the currency catalog.
type CurrencyRepository interface {
	// ListActiveCurrencies retrieves all active currencies ordered by code ascending.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	// Returns apperrors.ErrNotFound when the code is unknown.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// SaveCurrency persists a new catalog entry (seeding path).
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}
