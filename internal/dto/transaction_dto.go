package dto

import (
	"time"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a sale.
type CreateTransactionRequest struct {
	Store    string          `json:"store" binding:"max=255"`
	SKU      string          `json:"sku" binding:"required,max=64"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,alphanum,max=10"`
}

// TransactionResponse defines the data returned for a sale.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID,omitempty"`
	Store         string          `json:"store"`
	SKU           string          `json:"sku"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
}

// ListTransactionsParams holds the query parameters for listing transactions.
type ListTransactionsParams struct {
	SKU       string `form:"sku"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: txn.TransactionID,
		Store:         txn.Store,
		SKU:           txn.SKU,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
	}
	if !txn.CreatedAt.IsZero() {
		createdAt := txn.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}
