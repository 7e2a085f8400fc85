package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	portsrepo "github.com/SscSPs/usd_totals/internal/core/ports/repositories"
	"github.com/SscSPs/usd_totals/internal/models"
	"github.com/SscSPs/usd_totals/internal/utils/mapping"
	"github.com/SscSPs/usd_totals/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, store, sku, amount, currency_code, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

const selectTransactionColumns = `SELECT transaction_id, store, sku, amount, currency_code, created_at FROM transactions`

// SaveTransactions inserts txns in a single transaction.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(insertTransactionQuery, m.TransactionID, m.Store, m.SKU, m.Amount, m.CurrencyCode, m.CreatedAt)
	}

	if err := r.ExecBatch(ctx, tx, batch, "transaction"); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransactionsBySKU retrieves every transaction for sku.
func (r *PgxTransactionRepository) ListTransactionsBySKU(ctx context.Context, sku string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, selectTransactionColumns+` WHERE sku = $1 ORDER BY created_at, transaction_id`, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for sku %s: %w", sku, err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ListTransactions retrieves one keyset page of transactions, optionally for one sku.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, sku string, limit int, afterToken string) ([]domain.Transaction, string, error) {
	query := selectTransactionColumns + ` WHERE ($1 = '' OR sku = $1)`
	args := []any{sku}

	if afterToken != "" {
		createdAt, id, err := pagination.DecodeToken(afterToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (created_at, transaction_id) > ($2, $3)`
		args = append(args, createdAt, id)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at, transaction_id LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.TransactionID)
	}

	return mapping.ToDomainTransactionSlice(txns), nextToken, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Store,
			&txn.SKU,
			&txn.Amount,
			&txn.CurrencyCode,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return txns, nil
}
