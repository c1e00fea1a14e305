package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRepository implements the CurrencyRepository port using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new PgxCurrencyRepository.
func NewPgxCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: db}}
}

// ListActiveCurrencies retrieves all active currencies ordered by code.
// Base-currency promotion is the service's concern, not the query's.
func (r *PgxCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, code, name, COALESCE(symbol, ''), is_active, created_at
		FROM currencies
		WHERE is_active
		ORDER BY code ASC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currencies", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currencies", err)
	}
	return currencies, nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT id, code, name, COALESCE(symbol, ''), is_active, created_at
		FROM currencies
		WHERE code = $1;
	`

	var c domain.Currency
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(code)).Scan(
		&c.ID, &c.Code, &c.Name, &c.Symbol, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + code + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find currency", err)
	}
	return &c, nil
}

// SaveCurrency inserts a new catalog entry.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (code, name, symbol, is_active, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		strings.ToUpper(currency.Code), currency.Name, currency.Symbol,
		currency.IsActive, currency.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "currency already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	return nil
}
