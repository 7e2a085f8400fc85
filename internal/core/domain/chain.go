package domain

import "strings"

// ConversionChain is an ordered, connected sequence of rates leading from a currency to USD.
// Chains are rebuilt for every conversion and never stored.
type ConversionChain []Rate

// Origin returns the currency the chain starts from.
func (c ConversionChain) Origin() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].From
}

// Destination returns the currency the chain ends in.
func (c ConversionChain) Destination() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].To
}

// Currencies lists every currency visited, origin first.
func (c ConversionChain) Currencies() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, 0, len(c)+1)
	out = append(out, c[0].From)
	for _, r := range c {
		out = append(out, r.To)
	}
	return out
}

func (c ConversionChain) String() string {
	return strings.Join(c.Currencies(), "->")
}
