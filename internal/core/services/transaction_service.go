package services

import (
	"context"
	"fmt"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	portsrepo "github.com/ahmohbati/forex-backend/internal/core/ports/repositories"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/dto"
)

// TransactionService records conversions as immutable ledger rows and lists
// them per user. It trusts the userID handed to it by the authenticator.
type TransactionService struct {
	converter portssvc.ConversionSvcFacade
	txnRepo   portsrepo.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(converter portssvc.ConversionSvcFacade, txnRepo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{converter: converter, txnRepo: txnRepo}
}

// Record runs the conversion engine for the request and persists the outcome
// with the exchange rate and converted amount frozen to the values computed at
// this instant. ErrValidation and ErrNotFound propagate unchanged with no
// write. Two identical calls produce two distinct rows; there is no dedup.
func (s *TransactionService) Record(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	txnType := domain.TransactionType(req.Type)
	if req.Type == "" {
		txnType = domain.TransactionTypeConvert
	}
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	result, err := s.converter.Convert(ctx, dto.ConvertRequest{
		Amount:       req.Amount,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
	})
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		UserID:          userID,
		FromCurrency:    result.FromCurrency,
		ToCurrency:      result.ToCurrency,
		Amount:          result.OriginalAmount.Round(domain.AmountPrecision),
		ExchangeRate:    result.ExchangeRate.Round(domain.RatePrecision),
		ConvertedAmount: result.ConvertedAmount.Round(domain.AmountPrecision),
		Fee:             result.Fee.Round(domain.AmountPrecision),
		Type:            txnType,
		Status:          domain.TransactionStatusCompleted,
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return saved, nil
}

// ListForUser returns the caller's transactions newest first. No pagination yet.
func (s *TransactionService) ListForUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
