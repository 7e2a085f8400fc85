package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single sale recorded in the currency of the store that made it.
type Transaction struct {
	TransactionID string          `json:"transactionID,omitempty"` // Set when persisted
	Store         string          `json:"store"`
	SKU           string          `json:"sku"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt,omitempty"`
}
