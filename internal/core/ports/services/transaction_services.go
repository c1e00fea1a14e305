package services

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/ahmohbati/forex-backend/internal/dto"
)

// TransactionSvcFacade is the transaction ledger: it records conversions as
// immutable rows and lists them per user.
type TransactionSvcFacade interface {
	// Record converts via the conversion engine and persists the result with
	// the rate snapshot frozen at this instant. Propagates ErrValidation and
	// ErrNotFound unchanged without writing. The userID is trusted as
	// supplied by the authenticator.
	Record(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListForUser retrieves the caller's transactions, newest first. A user
	// with no rows gets an empty slice, not an error.
	ListForUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}
