package services

import (
	"context"
	"fmt"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	portsrepo "github.com/ahmohbati/forex-backend/internal/core/ports/repositories"
)

// CurrencyService provides read access to the currency catalog.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// ListActiveCurrencies returns active currencies ordered by code ascending,
// except the base currency is always moved to the front when present.
func (s *CurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return promoteBaseCurrency(currencies), nil
}

// promoteBaseCurrency moves the base currency to the front, keeping the
// relative order of everything else.
func promoteBaseCurrency(currencies []domain.Currency) []domain.Currency {
	for i, c := range currencies {
		if c.Code == domain.BaseCurrencyCode {
			if i == 0 {
				return currencies
			}
			sorted := make([]domain.Currency, 0, len(currencies))
			sorted = append(sorted, c)
			sorted = append(sorted, currencies[:i]...)
			sorted = append(sorted, currencies[i+1:]...)
			return sorted
		}
	}
	return currencies
}
