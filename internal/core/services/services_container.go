package services

import (
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/platform/config"
	"github.com/ahmohbati/forex-backend/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewServiceContainer wires concrete services over the pgsql repositories and
// returns them behind their facade interfaces.
func NewServiceContainer(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	repos := pgsql.NewRepositoryContainer(dbPool)

	currencySvc := NewCurrencyService(repos.Currency)
	rateSvc := NewRateService(repos.ExchangeRate)
	conversionSvc := NewConversionService(rateSvc)
	transactionSvc := NewTransactionService(conversionSvc, repos.Transaction)
	authSvc := NewAuthService(cfg, repos.User)

	return &portssvc.ServiceContainer{
		Currency:    currencySvc,
		Rate:        rateSvc,
		Conversion:  conversionSvc,
		Transaction: transactionSvc,
		Auth:        authSvc,
	}
}
