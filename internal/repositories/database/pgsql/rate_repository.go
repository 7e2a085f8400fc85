package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/usd_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	"github.com/SscSPs/usd_totals/internal/models"
	"github.com/SscSPs/usd_totals/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements portsrepo.RateRepositoryWithTx using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryWithTx {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

const insertRateQuery = `
	INSERT INTO exchange_rates (rate_id, from_currency_code, to_currency_code, conversion, created_at)
	VALUES ($1, $2, $3, $4, $5)`

// SaveRates inserts rates in a single transaction. The seq column records insertion
// order, which is the order the conversion catalog sees them in.
func (r *PgxRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelRate(rate)
		batch.Queue(insertRateQuery, m.RateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Conversion, m.CreatedAt)
	}

	if err := r.ExecBatch(ctx, tx, batch, "rate"); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListRates retrieves all rates in insertion order.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query := `
		SELECT rate_id, seq, from_currency_code, to_currency_code, conversion, created_at
		FROM exchange_rates
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		var rate models.Rate
		err := row.Scan(
			&rate.RateID,
			&rate.Seq,
			&rate.FromCurrencyCode,
			&rate.ToCurrencyCode,
			&rate.Conversion,
			&rate.CreatedAt,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	return mapping.ToDomainRateSlice(modelRates), nil
}
