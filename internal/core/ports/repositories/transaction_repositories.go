package repositories

import (
	"context"

	"github.com/SscSPs/usd_totals/internal/core/domain"
)

// TransactionReader defines read operations for sales transactions
type TransactionReader interface {
	// ListTransactionsBySKU retrieves every transaction recorded for sku, oldest first.
	ListTransactionsBySKU(ctx context.Context, sku string) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of transactions, optionally filtered by sku.
	// nextToken is empty when there are no more pages.
	ListTransactions(ctx context.Context, sku string, limit int, afterToken string) (txns []domain.Transaction, nextToken string, err error)
}

// TransactionWriter defines write operations for sales transactions
type TransactionWriter interface {
	// SaveTransactions stores transactions. All or none are stored.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
