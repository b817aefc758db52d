package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// Reader answers queries over a full record set. Every call rescans the set.
type Reader struct {
	load func(ctx context.Context) ([]*ledgerfile.Transaction, error)
}

func NewReader(table ledgerfile.ITransactionTable) *Reader {
	return &Reader{
		load: func(ctx context.Context) ([]*ledgerfile.Transaction, error) {
			defer logging.GetLogData(ctx).AddToExistingTiming("read_duration")()
			return table.ReadAll(ctx)
		},
	}
}

// List returns the records matching filter in stored order.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*ledgerfile.Transaction, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*ledgerfile.Transaction, 0, len(records))
	for _, tx := range records {
		if filter.Matches(tx) {
			result = append(result, tx.Clone())
		}
	}
	return result, nil
}

// FindByID returns nil when no record has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*ledgerfile.Transaction, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, tx := range records {
		if tx.ID == id {
			return tx.Clone(), nil
		}
	}
	return nil, nil
}

// InUse reports whether any record references category, ignoring case.
func (r *Reader) InUse(ctx context.Context, category string) (bool, error) {
	records, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, tx := range records {
		if sameCategory(tx.Category, category) {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of records.
func (r *Reader) Count(ctx context.Context) (int, error) {
	records, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
