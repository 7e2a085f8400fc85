package conversion

import (
	"fmt"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregator sums the USD value of the transactions of a SKU.
type Aggregator struct {
	converter *Converter
}

// NewAggregator creates an aggregator using converter.
func NewAggregator(converter *Converter) *Aggregator {
	return &Aggregator{converter: converter}
}

// Total converts and sums every transaction whose SKU equals sku.
// Each term is already rounded; the sum is not rounded again.
func (a *Aggregator) Total(transactions []domain.Transaction, sku string) (decimal.Decimal, error) {
	summary, err := a.Summarize(transactions, sku)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Total, nil
}

// Summarize is Total with the per-transaction breakdown kept.
// The first failed conversion aborts the whole summary.
func (a *Aggregator) Summarize(transactions []domain.Transaction, sku string) (*domain.SKUTotal, error) {
	summary := &domain.SKUTotal{SKU: sku, Lines: []domain.ConvertedLine{}, Total: decimal.Zero}
	for i, txn := range transactions {
		if txn.SKU != sku {
			continue
		}
		usd, chain, err := a.converter.convert(txn.Amount, txn.Currency)
		if err != nil {
			return nil, fmt.Errorf("transaction %d (%s, %s %s): %w", i+1, txn.Store, txn.Amount, txn.Currency, err)
		}
		summary.Lines = append(summary.Lines, domain.ConvertedLine{
			Transaction: txn,
			USDAmount:   usd,
			ChainLength: len(chain),
		})
		summary.Total = summary.Total.Add(usd)
	}
	return summary, nil
}

// Total sums the USD value of every transaction for sku using rates and the default
// half-even rounding.
func Total(transactions []domain.Transaction, rates *Catalog, sku string) (decimal.Decimal, error) {
	return NewAggregator(NewConverter(NewResolver(rates))).Total(transactions, sku)
}
