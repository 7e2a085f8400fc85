package dto

import (
	"time"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateRequest defines the structure for adding a new exchange rate edge.
type CreateRateRequest struct {
	From       string          `json:"from" binding:"required,alphanum,max=10"`
	To         string          `json:"to" binding:"required,alphanum,max=10"`
	Conversion decimal.Decimal `json:"conversion" binding:"required"` // Service checks > 0
}

// RateResponse defines the structure for API responses containing rate details.
type RateResponse struct {
	RateID     string          `json:"rateID,omitempty"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Conversion decimal.Decimal `json:"conversion"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
}

// ImportResponse reports how many records an import stored.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate domain.Rate) RateResponse {
	resp := RateResponse{
		RateID:     rate.RateID,
		From:       rate.From,
		To:         rate.To,
		Conversion: rate.Conversion,
	}
	if !rate.CreatedAt.IsZero() {
		createdAt := rate.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToListRateResponse converts a slice of domain.Rate to a slice of RateResponse DTOs.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToRateResponse(rate)
	}
	return responses
}
