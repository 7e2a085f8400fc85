package mapping

import (
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/SscSPs/usd_totals/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:           d.RateID,
		FromCurrencyCode: d.From,
		ToCurrencyCode:   d.To,
		Conversion:       d.Conversion,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		RateID:     m.RateID,
		From:       m.FromCurrencyCode,
		To:         m.ToCurrencyCode,
		Conversion: m.Conversion,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainRateSlice converts a slice of model Rates to domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
