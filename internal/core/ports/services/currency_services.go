package services

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// CurrencySvcFacade defines read operations over the currency catalog.
type CurrencySvcFacade interface {
	// ListActiveCurrencies retrieves all active currencies ordered by code
	// ascending, with the base currency moved to the front when present.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// RateSvcFacade defines read operations over the exchange-rate store.
type RateSvcFacade interface {
	// ResolveLatest retrieves the most recent rate for the pair.
	// Returns apperrors.ErrNotFound when no rate exists; callers must treat
	// that as a normal, branchable outcome.
	ResolveLatest(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)

	// ListRates retrieves recent rates for the base currency, newest first,
	// capped at the catalog's listing limit.
	ListRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)

	// ListPopularRates retrieves the latest rate from the base currency to
	// each popular target, in order of first encounter.
	ListPopularRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
