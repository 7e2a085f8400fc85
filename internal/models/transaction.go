package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Store         string          `json:"store"`
	SKU           string          `json:"sku"`
	Amount        decimal.Decimal `json:"amount"` // NUMERIC, in CurrencyCode
	CurrencyCode  string          `json:"currencyCode"`
	CreatedAt     time.Time       `json:"createdAt"`
}
