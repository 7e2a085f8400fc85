package domain

import (
	"github.com/shopspring/decimal"
)

// ConvertedLine is one transaction of a SKU total together with its USD value.
type ConvertedLine struct {
	Transaction Transaction     `json:"transaction"`
	USDAmount   decimal.Decimal `json:"usdAmount"`
	ChainLength int             `json:"chainLength"` // 0 when the amount was already in USD
}

// SKUTotal is the USD total of all transactions for one SKU.
type SKUTotal struct {
	SKU   string          `json:"sku"`
	Lines []ConvertedLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
