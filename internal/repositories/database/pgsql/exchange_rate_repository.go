package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmohbati/forex-backend/internal/apperrors"
	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the ExchangeRateRepository port using
// pgxpool. The table is append-only; nothing here updates or deletes.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindLatestRate retrieves the most recent rate for the pair. Ties on
// recorded_at are broken by the highest id so the result is deterministic.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	query := `
		SELECT id, base_currency, target_currency, rate, recorded_at
		FROM exchange_rates
		WHERE base_currency = $1 AND target_currency = $2
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1;
	`

	var rate domain.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)).Scan(
		&rate.ID, &rate.BaseCurrency, &rate.TargetCurrency, &rate.Rate, &rate.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate for pair " + baseCurrency + " to " + targetCurrency)
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	return &rate, nil
}

// ListRatesByBase retrieves up to limit rates for the base currency, newest first.
func (r *PgxExchangeRateRepository) ListRatesByBase(ctx context.Context, baseCurrency string, limit int) ([]domain.ExchangeRate, error) {
	query := `
		SELECT id, base_currency, target_currency, rate, recorded_at
		FROM exchange_rates
		WHERE base_currency = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, strings.ToUpper(baseCurrency), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// ListRatesForTargets retrieves all rates from baseCurrency to the given
// targets, newest first. The caller picks the latest per target.
func (r *PgxExchangeRateRepository) ListRatesForTargets(ctx context.Context, baseCurrency string, targetCurrencies []string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT id, base_currency, target_currency, rate, recorded_at
		FROM exchange_rates
		WHERE base_currency = $1 AND target_currency = ANY($2)
		ORDER BY recorded_at DESC, id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, strings.ToUpper(baseCurrency), targetCurrencies)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rates for targets", err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// SaveRate appends a new rate observation.
func (r *PgxExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (base_currency, target_currency, rate, recorded_at)
		VALUES ($1, $2, $3, $4);
	`

	_, err := r.Pool.Exec(ctx, query,
		strings.ToUpper(rate.BaseCurrency), strings.ToUpper(rate.TargetCurrency),
		rate.Rate, rate.RecordedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

func scanRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(&rate.ID, &rate.BaseCurrency, &rate.TargetCurrency, &rate.Rate, &rate.RecordedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}
	return rates, nil
}
