package repositories

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// ExchangeRateRepository defines persistence operations for the append-only
// rate store.
type ExchangeRateRepository interface {
	// FindLatestRate retrieves the most recent rate for the pair, newest
	// RecordedAt first with the highest ID breaking ties. Returns
	// apperrors.ErrNotFound when no rate exists for the pair; callers treat
	// that as a normal outcome.
	FindLatestRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)

	// ListRatesByBase retrieves up to limit rates for the base currency,
	// newest first.
	ListRatesByBase(ctx context.Context, baseCurrency string, limit int) ([]domain.ExchangeRate, error)

	// ListRatesForTargets retrieves all rates from baseCurrency to any of the
	// target codes, newest first.
	ListRatesForTargets(ctx context.Context, baseCurrency string, targetCurrencies []string) ([]domain.ExchangeRate, error)

	// SaveRate appends a new rate observation (seeding/ingestion path).
	SaveRate(ctx context.Context, rate domain.ExchangeRate) error
}
