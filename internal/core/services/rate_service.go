package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/usd_totals/internal/adapters/fileloader"
	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateService provides business logic for the exchange rate table.
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	loader   *fileloader.Loader
	cache    *ChainCache
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithRateChainCache makes the service invalidate cache whenever rates are written.
func WithRateChainCache(cache *ChainCache) RateServiceOption {
	return func(s *rateService) {
		s.cache = cache
	}
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, loader *fileloader.Loader, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		rateRepo: rateRepo,
		loader:   loader,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// CreateRate handles the creation of a new exchange rate edge.
func (s *rateService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error) {
	// Input validation (basic format) is handled by DTO binding tags.
	rate := domain.Rate{From: req.From, To: req.To, Conversion: req.Conversion}
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	stored, err := s.saveRates(ctx, []domain.Rate{rate})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("rate_id", stored[0].RateID),
		slog.String("from", rate.From),
		slog.String("to", rate.To))
	return &stored[0], nil
}

// ListRates returns the rate table in catalog order.
func (s *rateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// ImportRates parses an XML rates document and appends every rate it holds, in document order.
func (s *rateService) ImportRates(ctx context.Context, r io.Reader) (int, error) {
	rates, err := s.loader.LoadRates(r)
	if err != nil {
		return 0, err
	}
	if len(rates) == 0 {
		return 0, apperrors.NewValidationError("rates document contains no rate elements")
	}
	for i, rate := range rates {
		if err := validateRate(rate); err != nil {
			return 0, fmt.Errorf("rate %d: %w", i+1, err)
		}
	}

	if _, err := s.saveRates(ctx, rates); err != nil {
		return 0, err
	}

	s.LogInfo(ctx, "Exchange rates imported", slog.Int("count", len(rates)))
	return len(rates), nil
}

func (s *rateService) saveRates(ctx context.Context, rates []domain.Rate) ([]domain.Rate, error) {
	now := time.Now().UTC()
	stored := make([]domain.Rate, len(rates))
	for i, rate := range rates {
		rate.RateID = uuid.NewString()
		rate.CreatedAt = now
		stored[i] = rate
	}

	if err := s.rateRepo.SaveRates(ctx, stored); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rates", slog.Int("count", len(stored)))
		return nil, fmt.Errorf("failed to save exchange rates: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}
	return stored, nil
}

func validateRate(rate domain.Rate) error {
	if rate.From == "" || rate.To == "" {
		return apperrors.NewValidationError("from and to currency codes are required")
	}
	if rate.From == rate.To {
		return apperrors.NewValidationError(fmt.Sprintf("from and to currency codes cannot be the same (%s)", rate.From))
	}
	if rate.Conversion.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidationError(fmt.Sprintf("conversion for %s must be positive", rate))
	}
	return nil
}
