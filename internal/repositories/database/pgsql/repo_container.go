package pgsql

import (
	portsrepo "github.com/ahmohbati/forex-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles the pgsql repositories behind their ports.
type RepositoryContainer struct {
	Currency     portsrepo.CurrencyRepository
	ExchangeRate portsrepo.ExchangeRateRepository
	Transaction  portsrepo.TransactionRepository
	User         portsrepo.UserRepository
}

// NewRepositoryContainer creates all repositories over a shared pool.
func NewRepositoryContainer(db *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Currency:     NewPgxCurrencyRepository(db),
		ExchangeRate: NewPgxExchangeRateRepository(db),
		Transaction:  NewPgxTransactionRepository(db),
		User:         NewPgxUserRepository(db),
	}
}
