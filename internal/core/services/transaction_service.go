package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/usd_totals/internal/adapters/fileloader"
	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/google/uuid"
)

const defaultListLimit = 100

// transactionService provides business logic for sales transactions.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	loader  *fileloader.Loader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, loader *fileloader.Loader) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, loader: loader}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a single sale.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		Store:    req.Store,
		SKU:      req.SKU,
		Amount:   req.Amount,
		Currency: req.Currency,
	}

	stored, err := s.saveTransactions(ctx, []domain.Transaction{txn})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", stored[0].TransactionID),
		slog.String("sku", txn.SKU))
	return &stored[0], nil
}

// ListTransactions returns one page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, params.SKU, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("sku", params.SKU))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	}, nil
}

// ImportTransactions parses a transactions CSV and records every line.
func (s *transactionService) ImportTransactions(ctx context.Context, r io.Reader) (int, error) {
	txns, err := s.loader.LoadTransactions(r)
	if err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, apperrors.NewValidationError("transactions file contains no records")
	}

	if _, err := s.saveTransactions(ctx, txns); err != nil {
		return 0, err
	}

	s.LogInfo(ctx, "Transactions imported", slog.Int("count", len(txns)))
	return len(txns), nil
}

func (s *transactionService) saveTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	now := time.Now().UTC()
	stored := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		txn.TransactionID = uuid.NewString()
		// Distinct timestamps keep keyset pagination in insertion order within a batch.
		txn.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		stored[i] = txn
	}

	if err := s.txnRepo.SaveTransactions(ctx, stored); err != nil {
		s.LogError(ctx, err, "Failed to save transactions", slog.Int("count", len(stored)))
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}
	return stored, nil
}
