package fileloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	"github.com/shopspring/decimal"
)

// transactionRow is one data line: store,sku,"<amount> <currency>".
type transactionRow struct {
	Store    string
	SKU      string `validate:"required"`
	Amount   string `validate:"required"`
	Currency string `validate:"required"`
}

// LoadTransactions reads a transactions CSV. The first line is a header and is skipped.
func (l *Loader) LoadTransactions(r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// Read the header row and ignore it
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, readError("CSV header", err)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError("CSV record", err)
		}

		line, _ := reader.FieldPos(0)
		txn, err := l.toTransaction(line, record)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// LoadTransactionsFile opens path and reads it with LoadTransactions.
func (l *Loader) LoadTransactionsFile(path string) ([]domain.Transaction, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.LoadTransactions(f)
}

func (l *Loader) toTransaction(line int, record []string) (domain.Transaction, error) {
	row := transactionRow{
		Store: strings.TrimSpace(record[0]),
		SKU:   strings.TrimSpace(record[1]),
	}
	// "19.68 AUD"
	amountParts := strings.Fields(record[2])
	if len(amountParts) != 2 {
		return domain.Transaction{}, fmt.Errorf("%w: line %d: amount %q must be \"<amount> <currency>\"", apperrors.ErrValidation, line, record[2])
	}
	row.Amount, row.Currency = amountParts[0], amountParts[1]

	if err := l.validateRecord("line", line, row); err != nil {
		return domain.Transaction{}, err
	}

	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: line %d amount %q", apperrors.ErrInvalidNumeric, line, row.Amount)
	}

	return domain.Transaction{
		Store:    row.Store,
		SKU:      row.SKU,
		Amount:   amount,
		Currency: row.Currency,
	}, nil
}
