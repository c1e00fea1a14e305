package services

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/ahmohbati/forex-backend/internal/dto"
)

// ConversionSvcFacade is the conversion engine: a pure query that resolves the
// pair's latest rate and computes fee and net amount. It never persists.
type ConversionSvcFacade interface {
	// Convert validates the request, resolves the rate and computes the
	// result. Returns apperrors.ErrValidation for missing or non-positive
	// inputs (before any lookup) and apperrors.ErrNotFound when the pair has
	// no stored rate.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)
}
