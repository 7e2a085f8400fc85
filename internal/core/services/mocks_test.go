package services_test

import (
	"context"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsBySKU(ctx context.Context, sku string) ([]domain.Transaction, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, sku string, limit int, afterToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, sku, limit, afterToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func newRate(from, to, conversion string) domain.Rate {
	return domain.Rate{From: from, To: to, Conversion: decimal.RequireFromString(conversion)}
}

func newTxn(store, sku, amount, currency string) domain.Transaction {
	return domain.Transaction{Store: store, SKU: sku, Amount: decimal.RequireFromString(amount), Currency: currency}
}

func sampleRates() []domain.Rate {
	return []domain.Rate{
		newRate("AUD", "CAD", "1.0079"),
		newRate("CAD", "USD", "1.0090"),
		newRate("USD", "CAD", "0.9911"),
		newRate("EUR", "AUD", "1.5000"),
		newRate("CAD", "AUD", "0.9922"),
		newRate("AUD", "EUR", "0.6667"),
	}
}

func sampleDM1182() []domain.Transaction {
	return []domain.Transaction{
		newTxn("Yonkers", "DM1182", "19.68", "AUD"),
		newTxn("Nashua", "DM1182", "58.58", "AUD"),
		newTxn("Camden", "DM1182", "54.64", "USD"),
	}
}
