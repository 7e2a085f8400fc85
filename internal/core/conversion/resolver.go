package conversion

import (
	"fmt"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
)

// PathResolver finds the chain of rates converting a currency into USD.
type PathResolver interface {
	ConversionsToUSD(from string) (domain.ConversionChain, error)
}

// Resolver finds conversion chains over a Catalog.
type Resolver struct {
	catalog        *Catalog
	maxChainLength int
}

// ResolverOption is a functional option for configuring the resolver
type ResolverOption func(*Resolver)

// WithMaxChainLength caps the number of edges a chain may grow to.
// Zero or a negative value leaves the natural bound: a chain never visits a
// currency twice, so it is never longer than the catalog has currencies.
func WithMaxChainLength(n int) ResolverOption {
	return func(r *Resolver) {
		r.maxChainLength = n
	}
}

// NewResolver creates a resolver over catalog.
func NewResolver(catalog *Catalog, options ...ResolverOption) *Resolver {
	r := &Resolver{catalog: catalog}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ PathResolver = (*Resolver)(nil)

// ConversionsToUSD returns the conversion chain from the given currency to USD.
// A direct rate is always preferred; otherwise the shortest composite chain is returned,
// ties going to the chain discovered first in catalog order.
func (r *Resolver) ConversionsToUSD(from string) (domain.ConversionChain, error) {
	if rate, ok := r.catalog.DirectConversion(from, domain.USD); ok {
		return domain.ConversionChain{rate}, nil
	}
	return r.chainedConversion(from)
}

// chainedConversion is a breadth-first search over currencies. Each generation holds
// one chain per currency first reached at that length, built from the previous
// generation in catalog order, so the first chain ending in USD is the shortest one
// and, among equally short ones, the first discovered.
func (r *Resolver) chainedConversion(from string) (domain.ConversionChain, error) {
	candidates := make([]domain.Rate, 0, r.catalog.Len())
	for _, rate := range r.catalog.rates {
		if rate.From != domain.USD {
			candidates = append(candidates, rate)
		}
	}

	visited := map[string]bool{from: true}
	generation := extend([]domain.ConversionChain{nil}, from, candidates, visited)

	for length := 1; len(generation) > 0; length++ {
		for _, chain := range generation {
			if chain.Destination() == domain.USD {
				return chain, nil
			}
		}

		next := extend(generation, "", candidates, visited)
		if len(next) > 0 && r.maxChainLength > 0 && length+1 > r.maxChainLength {
			return nil, &apperrors.ConversionError{
				Currency: from,
				Err:      fmt.Errorf("%w (%d)", apperrors.ErrUnboundedPathSearch, r.maxChainLength),
			}
		}
		generation = next
	}

	return nil, &apperrors.ConversionError{Currency: from, Err: apperrors.ErrNoConversionPath}
}

// extend appends one candidate edge to the chains of current, keeping only edges that
// reach a currency not visited yet and marking it visited. An empty chain starts at origin.
func extend(current []domain.ConversionChain, origin string, candidates []domain.Rate, visited map[string]bool) []domain.ConversionChain {
	var next []domain.ConversionChain
	for _, left := range current {
		at := origin
		if len(left) > 0 {
			at = left.Destination()
		}
		for _, right := range candidates {
			if right.From != at || visited[right.To] {
				continue
			}
			visited[right.To] = true
			extended := make(domain.ConversionChain, len(left), len(left)+1)
			copy(extended, left)
			next = append(next, append(extended, right))
		}
	}
	return next
}
