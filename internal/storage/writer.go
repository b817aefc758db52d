package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

// Writer groups the snapshots touched by one mutation. Nothing reaches disk
// before Commit; each modified file is then replaced atomically.
type Writer struct {
	Category    *category.Writer
	Transaction *transaction.Writer
}

func NewWriter(transactions ledgerfile.ITransactionTable, categories ledgerfile.ICategoryTable) *Writer {
	return &Writer{
		Category:    category.NewWriter(categories),
		Transaction: transaction.NewWriter(transactions),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.Transaction.Flush(ctx); err != nil {
		return errors.Wrap(err, "writing transactions")
	}
	if err := w.Category.Flush(ctx); err != nil {
		return errors.Wrap(err, "writing categories")
	}
	return nil
}

func (w *Writer) Rollback() error {
	w.Transaction.Discard()
	w.Category.Discard()
	return nil
}
