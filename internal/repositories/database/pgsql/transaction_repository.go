package pgsql

import (
	"context"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the TransactionRepository port using
// pgxpool. Rows are immutable once written; a single-row insert is the only
// write and is atomic by construction.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// SaveTransaction inserts a new ledger row and returns it with the assigned
// id and creation timestamp.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (
			user_id, from_currency, to_currency, amount,
			exchange_rate, converted_amount, fee, type, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;
	`

	saved := txn
	err := r.Pool.QueryRow(ctx, query,
		txn.UserID, txn.FromCurrency, txn.ToCurrency, txn.Amount,
		txn.ExchangeRate, txn.ConvertedAmount, txn.Fee, string(txn.Type), txn.Status,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save transaction", err)
	}
	return &saved, nil
}

// ListTransactionsByUser retrieves all of a user's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, from_currency, to_currency, amount,
		       exchange_rate, converted_amount, fee, type, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		var txnType string
		if err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.FromCurrency, &txn.ToCurrency, &txn.Amount,
			&txn.ExchangeRate, &txn.ConvertedAmount, &txn.Fee, &txnType, &txn.Status, &txn.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		txn.Type = domain.TransactionType(txnType)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transactions", err)
	}
	return txns, nil
}
