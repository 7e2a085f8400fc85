package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/conversion"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
)

// totalsService converts transactions to USD and totals them per SKU.
type totalsService struct {
	BaseService
	rateRepo       portsrepo.RateReader
	txnRepo        portsrepo.TransactionReader
	cache          *ChainCache
	maxChainLength int
	roundingMode   conversion.RoundingMode
}

// TotalsServiceOption is a functional option for configuring the totals service
type TotalsServiceOption func(*totalsService)

// WithChainCache serves chains resolved against the stored rate table from cache.
func WithChainCache(cache *ChainCache) TotalsServiceOption {
	return func(s *totalsService) {
		s.cache = cache
	}
}

// WithMaxChainLength caps chained searches. Zero keeps the distinct currency count.
func WithMaxChainLength(n int) TotalsServiceOption {
	return func(s *totalsService) {
		s.maxChainLength = n
	}
}

// WithRoundingMode sets how converted amounts are rounded to cents.
func WithRoundingMode(mode conversion.RoundingMode) TotalsServiceOption {
	return func(s *totalsService) {
		s.roundingMode = mode
	}
}

// NewTotalsService creates a new totals service.
func NewTotalsService(rateRepo portsrepo.RateReader, txnRepo portsrepo.TransactionReader, options ...TotalsServiceOption) portssvc.TotalsSvcFacade {
	svc := &totalsService{
		rateRepo:     rateRepo,
		txnRepo:      txnRepo,
		roundingMode: conversion.RoundHalfEven,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TotalsSvcFacade = (*totalsService)(nil)

// SKUTotal totals the stored transactions of sku.
func (s *totalsService) SKUTotal(ctx context.Context, sku string) (*domain.SKUTotal, error) {
	if sku == "" {
		return nil, apperrors.NewValidationError("sku is required")
	}

	txns, err := s.txnRepo.ListTransactionsBySKU(ctx, sku)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("sku", sku))
		return nil, fmt.Errorf("failed to load transactions for %s: %w", sku, err)
	}

	resolver, err := s.storedResolver(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.aggregator(resolver).Summarize(txns, sku)
	if err != nil {
		s.LogError(ctx, err, "Failed to total SKU", slog.String("sku", sku))
		return nil, err
	}

	s.LogDebug(ctx, "SKU totalled",
		slog.String("sku", sku),
		slog.Int("transactions", len(summary.Lines)),
		slog.String("total", summary.Total.String()))
	return summary, nil
}

// ConversionPath resolves the chain of stored rates from currency to USD.
func (s *totalsService) ConversionPath(ctx context.Context, currency string) (domain.ConversionChain, error) {
	if currency == "" {
		return nil, apperrors.NewValidationError("currency is required")
	}
	if currency == domain.USD {
		return domain.ConversionChain{}, nil
	}

	resolver, err := s.storedResolver(ctx)
	if err != nil {
		return nil, err
	}

	chain, err := resolver.ConversionsToUSD(currency)
	if err != nil {
		s.LogDebug(ctx, "No conversion chain", slog.String("currency", currency), slog.String("error", err.Error()))
		return nil, err
	}
	return chain, nil
}

// ComputeTotal totals sku over the supplied data. Nothing is read from or written to storage.
func (s *totalsService) ComputeTotal(ctx context.Context, rates []domain.Rate, txns []domain.Transaction, sku string) (*domain.SKUTotal, error) {
	if sku == "" {
		return nil, apperrors.NewValidationError("sku is required")
	}

	summary, err := s.aggregator(s.resolver(rates)).Summarize(txns, sku)
	if err != nil {
		s.LogDebug(ctx, "Inline total failed", slog.String("sku", sku), slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}

// storedResolver builds a resolver over the stored rate table, cached when a cache is configured.
func (s *totalsService) storedResolver(ctx context.Context) (conversion.PathResolver, error) {
	var version uint64
	if s.cache != nil {
		version = s.cache.Snapshot()
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rates")
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	resolver := s.resolver(rates)
	if s.cache != nil {
		return s.cache.Wrap(version, resolver), nil
	}
	return resolver, nil
}

func (s *totalsService) resolver(rates []domain.Rate) conversion.PathResolver {
	return conversion.NewResolver(conversion.NewCatalog(rates), conversion.WithMaxChainLength(s.maxChainLength))
}

func (s *totalsService) aggregator(resolver conversion.PathResolver) *conversion.Aggregator {
	return conversion.NewAggregator(conversion.NewConverter(resolver, conversion.WithRoundingMode(s.roundingMode)))
}
