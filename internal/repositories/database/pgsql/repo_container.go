package pgsql

import (
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository onto dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        newPgxRateRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
