package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a row of the exchange_rates table.
type Rate struct {
	RateID           string          `json:"rateID"` // Primary Key (UUID)
	Seq              int64           `json:"seq"`    // Insertion order; defines catalog order
	FromCurrencyCode string          `json:"from"`   // Not validated against ISO codes
	ToCurrencyCode   string          `json:"to"`
	Conversion       decimal.Decimal `json:"conversion"` // NUMERIC
	CreatedAt        time.Time       `json:"createdAt"`
}
