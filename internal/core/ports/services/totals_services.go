package services

import (
	"context"

	"github.com/SscSPs/usd_totals/internal/core/domain"
)

// TotalsSvcFacade defines the USD conversion and aggregation operations.
type TotalsSvcFacade interface {
	// SKUTotal totals the stored transactions of sku against the stored rate table.
	SKUTotal(ctx context.Context, sku string) (*domain.SKUTotal, error)

	// ConversionPath resolves the chain of stored rates that converts currency to USD.
	// USD itself resolves to an empty chain.
	ConversionPath(ctx context.Context, currency string) (domain.ConversionChain, error)

	// ComputeTotal totals sku over the given transactions and rates without touching storage.
	ComputeTotal(ctx context.Context, rates []domain.Rate, txns []domain.Transaction, sku string) (*domain.SKUTotal, error)
}
