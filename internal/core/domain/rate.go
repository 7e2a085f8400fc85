package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// USD is the currency every amount is normalized into.
const USD = "USD"

// Rate is a directed exchange-rate edge: 1 unit of From equals Conversion units of To.
// The catalog may hold several rates for the same pair; the first one wins.
type Rate struct {
	RateID     string          `json:"rateID,omitempty"` // Set when persisted
	From       string          `json:"from"`
	To         string          `json:"to"`
	Conversion decimal.Decimal `json:"conversion"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
}

// String renders the edge as "FROM->TO".
func (r Rate) String() string {
	return r.From + "->" + r.To
}
