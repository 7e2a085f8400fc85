// Package conversion resolves exchange-rate chains to USD and applies them to amounts.
package conversion

import (
	"github.com/SscSPs/usd_totals/internal/core/domain"
)

// Catalog is an in-memory, read-only collection of exchange-rate edges.
// It is safe for concurrent readers once constructed.
type Catalog struct {
	rates []domain.Rate
}

// NewCatalog creates a catalog holding a copy of rates, in the given order.
func NewCatalog(rates []domain.Rate) *Catalog {
	stored := make([]domain.Rate, len(rates))
	copy(stored, rates)
	return &Catalog{rates: stored}
}

// DirectConversion returns the first stored rate going exactly from -> to.
func (c *Catalog) DirectConversion(from, to string) (domain.Rate, bool) {
	for _, rate := range c.rates {
		if rate.From == from && rate.To == to {
			return rate, true
		}
	}
	return domain.Rate{}, false
}

// Rates returns a copy of the stored edges in catalog order.
func (c *Catalog) Rates() []domain.Rate {
	out := make([]domain.Rate, len(c.rates))
	copy(out, c.rates)
	return out
}

// Len returns the number of stored edges.
func (c *Catalog) Len() int {
	return len(c.rates)
}

// Currencies returns every distinct currency code appearing on either end of an edge,
// in order of first appearance.
func (c *Catalog) Currencies() []string {
	seen := make(map[string]struct{}, len(c.rates)*2)
	var codes []string
	for _, rate := range c.rates {
		for _, code := range []string{rate.From, rate.To} {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}
