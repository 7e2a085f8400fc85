package services

import (
	"log/slog"

	"github.com/SscSPs/usd_totals/internal/adapters/fileloader"
	"github.com/SscSPs/usd_totals/internal/core/conversion"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usd_totals/internal/core/ports/services"
	"github.com/SscSPs/usd_totals/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	mode, err := conversion.ParseRoundingMode(cfg.RoundingMode)
	if err != nil {
		slog.Warn("Invalid ROUNDING_MODE, falling back to half_even", slog.String("error", err.Error()))
		mode = conversion.RoundHalfEven
	}

	// Rate writes and totals share one chain cache so writes invalidate resolved chains.
	chainCache := NewChainCache(cfg.ChainCacheTTL)
	loader := fileloader.NewLoader()

	return &portssvc.ServiceContainer{
		Rate:        NewRateService(repos.RateRepo, loader, WithRateChainCache(chainCache)),
		Transaction: NewTransactionService(repos.TransactionRepo, loader),
		Totals: NewTotalsService(repos.RateRepo, repos.TransactionRepo,
			WithChainCache(chainCache),
			WithMaxChainLength(cfg.MaxChainLength),
			WithRoundingMode(mode),
		),
	}
}
