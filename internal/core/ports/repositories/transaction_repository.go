package repositories

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for the transaction ledger.
type TransactionRepository interface {
	// SaveTransaction inserts a new ledger row and returns it with the
	// store-assigned ID and creation timestamp.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves all transactions owned by userID,
	// newest first by CreatedAt. Returns an empty slice, not nil, when the
	// user has no transactions.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}
