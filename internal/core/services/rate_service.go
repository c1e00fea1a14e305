package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	portsrepo "github.com/ahmohbati/forex-backend/internal/core/ports/repositories"
)

// RateListingLimit caps how many rate observations a listing returns.
const RateListingLimit = 15

// RateService resolves and lists exchange rates. Every resolution is a fresh
// lookup; the rate table is small enough that caching buys nothing.
type RateService struct {
	rateRepo portsrepo.ExchangeRateRepository
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.ExchangeRateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

// ResolveLatest returns the most recent rate for the pair, or
// apperrors.ErrNotFound when none is stored. Not-found is the expected path
// for unsupported pairs and is never wrapped into a generic failure.
func (s *RateService) ResolveLatest(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	base := strings.ToUpper(baseCurrency)
	target := strings.ToUpper(targetCurrency)
	if len(base) != 3 || len(target) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	// Repository already maps zero rows to apperrors.ErrNotFound; propagate
	// verbatim so callers can branch on it.
	return s.rateRepo.FindLatestRate(ctx, base, target)
}

// ListRates returns up to RateListingLimit rates for the base currency,
// newest first. An empty base falls back to the system base currency.
func (s *RateService) ListRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	base := strings.ToUpper(baseCurrency)
	if base == "" {
		base = domain.BaseCurrencyCode
	}

	rates, err := s.rateRepo.ListRatesByBase(ctx, base, RateListingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for %s: %w", base, err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// ListPopularRates returns the latest rate from the base currency to each
// popular target. Output order is the order targets are first encountered in
// the newest-first scan, not sorted by code.
func (s *RateService) ListPopularRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRatesForTargets(ctx, domain.BaseCurrencyCode, domain.PopularCurrencyCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular rates: %w", err)
	}

	seen := make(map[string]struct{}, len(domain.PopularCurrencyCodes))
	latest := make([]domain.ExchangeRate, 0, len(domain.PopularCurrencyCodes))
	for _, rate := range rates {
		if _, ok := seen[rate.TargetCurrency]; ok {
			continue
		}
		seen[rate.TargetCurrency] = struct{}{}
		latest = append(latest, rate)
	}
	return latest, nil
}
