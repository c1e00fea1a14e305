package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionService computes conversions from the latest stored rate. It is a
// pure query shared by the anonymous preview endpoint and the ledger write
// path; it never persists anything itself.
type ConversionService struct {
	rateService portssvc.RateSvcFacade
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateService portssvc.RateSvcFacade) *ConversionService {
	return &ConversionService{rateService: rateService}
}

// Convert validates the request, resolves the pair's latest rate and computes
// the fee and net converted amount in fixed order:
//
//	gross = amount * rate
//	fee   = gross * FeeRate
//	net   = gross - fee
//
// Values are returned exact; rounding to amount precision is the ledger's
// concern. Validation failures return ErrValidation before any lookup; a pair
// with no stored rate returns ErrNotFound unchanged.
func (s *ConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrency))
	if to == "" {
		return nil, fmt.Errorf("%w: toCurrency is required", apperrors.ErrValidation)
	}
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrency))
	if from == "" {
		from = domain.BaseCurrencyCode
	}

	rate, err := s.rateService.ResolveLatest(ctx, from, to)
	if err != nil {
		// ErrNotFound is the dominant expected failure here; it must stay
		// distinguishable for the 404 mapping at the boundary.
		return nil, err
	}

	gross := req.Amount.Mul(rate.Rate)
	fee := gross.Mul(domain.FeeRate)
	net := gross.Sub(fee)

	return &domain.ConversionResult{
		OriginalAmount:  req.Amount,
		ConvertedAmount: net,
		ExchangeRate:    rate.Rate,
		Fee:             fee,
		FromCurrency:    from,
		ToCurrency:      to,
		Timestamp:       time.Now().UTC(),
	}, nil
}
