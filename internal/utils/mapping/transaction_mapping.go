package mapping

import (
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/SscSPs/usd_totals/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Store:         d.Store,
		SKU:           d.SKU,
		Amount:        d.Amount,
		CurrencyCode:  d.Currency,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Store:         m.Store,
		SKU:           m.SKU,
		Amount:        m.Amount,
		Currency:      m.CurrencyCode,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
