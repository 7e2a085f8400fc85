package repositories

import (
	"context"

	"github.com/SscSPs/usd_totals/internal/core/domain"
)

// RateReader defines read operations for exchange rate data
type RateReader interface {
	// ListRates retrieves every stored rate in insertion order, which is the catalog order.
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// RateWriter defines write operations for exchange rate data
type RateWriter interface {
	// SaveRates appends rates, keeping their order. All or none are stored.
	SaveRates(ctx context.Context, rates []domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
