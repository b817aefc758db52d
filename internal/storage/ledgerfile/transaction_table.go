package ledgerfile

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
)

// TransactionHeader is the column order written to the transactions file.
var TransactionHeader = []string{"id", "timestamp", "category", "amount", "type", "description"}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions CSV file.
type TransactionsTable struct {
	path string
}

// NewTransactionsTable creates a TransactionsTable backed by path.
func NewTransactionsTable(path string) *TransactionsTable {
	return &TransactionsTable{path: path}
}

// Path returns the canonical file path.
func (t *TransactionsTable) Path() string {
	return t.path
}

// EnsureInitialized creates the file with only the header if it is absent.
func (t *TransactionsTable) EnsureInitialized(_ context.Context) (bool, error) {
	return ensureCSV(t.path, TransactionHeader, nil)
}

// ReadAll loads every transaction in file order. Columns are located by
// header name; a missing type column is derived from the amount sign and a
// legacy "datetime" column is read as the timestamp.
func (t *TransactionsTable) ReadAll(_ context.Context) ([]*Transaction, error) {
	header, rows, err := readCSV(t.path)
	if err != nil {
		return nil, err
	}

	for _, required := range []string{"id", "amount"} {
		if _, ok := header[required]; !ok {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: 1, Err: fmt.Errorf("missing %q column", required)}
		}
	}

	result := make([]*Transaction, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		tx, err := parseTransactionRow(header, row.fields)
		if err != nil {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: row.line, Err: err}
		}
		if _, dup := seen[tx.ID]; dup {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: row.line, Err: fmt.Errorf("duplicate id %s", tx.ID)}
		}
		seen[tx.ID] = struct{}{}
		result = append(result, tx)
	}
	return result, nil
}

// WriteAll atomically replaces the file with the given transactions.
func (t *TransactionsTable) WriteAll(_ context.Context, transactions []*Transaction) error {
	rows := make([][]string, len(transactions))
	seen := make(map[uuid.UUID]struct{}, len(transactions))
	for i, tx := range transactions {
		if _, dup := seen[tx.ID]; dup {
			return &ledgererr.IntegrityError{Reason: fmt.Sprintf("duplicate transaction id %s", tx.ID)}
		}
		seen[tx.ID] = struct{}{}
		rows[i] = formatTransactionRow(tx)
	}
	return atomicWriteCSV(t.path, TransactionHeader, rows)
}

// FindByID scans the file for id. A missing id returns nil without error.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	all, err := t.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, tx := range all {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func parseTransactionRow(header csvHeader, row []string) (*Transaction, error) {
	rawID, _ := header.get(row, "id")
	id, err := uuid.FromString(rawID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse id %q", rawID)
	}

	rawTimestamp, _ := header.get(row, "timestamp", "datetime")
	timestamp, err := time.ParseInLocation(TimestampLayout, rawTimestamp, time.UTC)
	if err != nil {
		return nil, errors.Wrapf(err, "parse timestamp %q", rawTimestamp)
	}

	rawAmount, _ := header.get(row, "amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, errors.Wrapf(err, "parse amount %q", rawAmount)
	}

	txType := TransactionTypeIncome
	if amount.IsNegative() {
		txType = TransactionTypeExpense
	}
	if rawType, ok := header.get(row, "type"); ok && rawType != "" {
		txType, err = ParseTransactionType(rawType)
		if err != nil {
			return nil, err
		}
	}

	category, _ := header.get(row, "category")
	description, _ := header.get(row, "description")

	return &Transaction{
		ID:          id,
		Timestamp:   timestamp,
		Category:    category,
		Amount:      amount,
		Type:        txType,
		Description: description,
	}, nil
}

func formatTransactionRow(tx *Transaction) []string {
	return []string{
		tx.ID.String(),
		tx.Timestamp.Format(TimestampLayout),
		tx.Category,
		tx.Amount.StringFixed(2),
		tx.Type.String(),
		tx.Description,
	}
}
