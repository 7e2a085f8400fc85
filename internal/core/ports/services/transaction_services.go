package services

import (
	"context"
	"io"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/SscSPs/usd_totals/internal/dto"
)

// TransactionReaderSvc defines read operations for sales transactions
type TransactionReaderSvc interface {
	// ListTransactions retrieves a page of transactions, optionally filtered by SKU.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for sales transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a single sale.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ImportTransactions records every line of a transactions CSV and returns how many were stored.
	ImportTransactions(ctx context.Context, r io.Reader) (int, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
