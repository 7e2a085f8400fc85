package services

import (
	"context"
	"io"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/SscSPs/usd_totals/internal/dto"
)

// RateReaderSvc defines read operations for exchange rate data
type RateReaderSvc interface {
	// ListRates retrieves the rate table in catalog order.
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

// RateWriterSvc defines write operations for exchange rate data
type RateWriterSvc interface {
	// CreateRate appends a single rate edge to the table.
	CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error)

	// ImportRates appends every rate of an XML rates document and returns how many were stored.
	ImportRates(ctx context.Context, r io.Reader) (int, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
