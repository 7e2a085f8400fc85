package conversion

import (
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// USDPlaces is the number of fractional digits kept on converted amounts.
const USDPlaces int32 = 2

// Converter turns amounts in any currency into rounded USD amounts.
type Converter struct {
	resolver PathResolver
	mode     RoundingMode
}

// ConverterOption is a functional option for configuring the converter
type ConverterOption func(*Converter)

// WithRoundingMode overrides the default half-even rounding.
func WithRoundingMode(mode RoundingMode) ConverterOption {
	return func(c *Converter) {
		c.mode = mode
	}
}

// NewConverter creates a converter that resolves chains with resolver.
func NewConverter(resolver PathResolver, options ...ConverterOption) *Converter {
	c := &Converter{resolver: resolver, mode: RoundHalfEven}
	for _, option := range options {
		option(c)
	}
	return c
}

// Convert returns amount expressed in USD. USD amounts are returned untouched;
// everything else is multiplied through its chain and rounded to cents.
func (c *Converter) Convert(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	converted, _, err := c.convert(amount, currency)
	return converted, err
}

func (c *Converter) convert(amount decimal.Decimal, currency string) (decimal.Decimal, domain.ConversionChain, error) {
	if currency == domain.USD {
		return amount, nil, nil
	}

	chain, err := c.resolver.ConversionsToUSD(currency)
	if err != nil {
		return decimal.Zero, nil, err
	}

	return Round(Apply(amount, chain), USDPlaces, c.mode), chain, nil
}

// Apply multiplies amount by every factor of chain, in order, without rounding.
func Apply(amount decimal.Decimal, chain domain.ConversionChain) decimal.Decimal {
	result := amount
	for _, rate := range chain {
		result = result.Mul(rate.Conversion)
	}
	return result
}
