package transaction

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// Writer edits an in-memory snapshot of the record set. The snapshot is
// loaded on first use and reaches disk only through Flush.
type Writer struct {
	table   ledgerfile.ITransactionTable
	records []*ledgerfile.Transaction
	loaded  bool
	dirty   bool
	Reader
}

func NewWriter(table ledgerfile.ITransactionTable) *Writer {
	w := &Writer{table: table}
	w.Reader = Reader{load: w.snapshot}
	return w
}

func (w *Writer) snapshot(ctx context.Context) ([]*ledgerfile.Transaction, error) {
	if w.loaded {
		return w.records, nil
	}
	defer logging.GetLogData(ctx).AddToExistingTiming("read_duration")()
	records, err := w.table.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	w.records = records
	w.loaded = true
	return w.records, nil
}

// Insert appends tx. The id must not already be present.
func (w *Writer) Insert(ctx context.Context, tx *ledgerfile.Transaction) error {
	records, err := w.snapshot(ctx)
	if err != nil {
		return err
	}
	for _, existing := range records {
		if existing.ID == tx.ID {
			return &ledgererr.IntegrityError{Reason: fmt.Sprintf("transaction id %s already exists", tx.ID)}
		}
	}
	w.records = append(w.records, tx.Clone())
	w.dirty = true
	return nil
}

// Replace overwrites the record with the same id in place.
func (w *Writer) Replace(ctx context.Context, tx *ledgerfile.Transaction) error {
	records, err := w.snapshot(ctx)
	if err != nil {
		return err
	}
	for i, existing := range records {
		if existing.ID == tx.ID {
			w.records[i] = tx.Clone()
			w.dirty = true
			return nil
		}
	}
	return &ledgererr.NotFoundError{Kind: "transaction", Key: tx.ID.String()}
}

// Delete removes the record with id and reports whether one was removed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	records, err := w.snapshot(ctx)
	if err != nil {
		return false, err
	}
	for i, existing := range records {
		if existing.ID == id {
			w.records = append(w.records[:i:i], w.records[i+1:]...)
			w.dirty = true
			return true, nil
		}
	}
	return false, nil
}

// Dirty reports whether the snapshot differs from what was loaded.
func (w *Writer) Dirty() bool {
	return w.dirty
}

// Flush writes the snapshot if it was modified.
func (w *Writer) Flush(ctx context.Context) error {
	if !w.dirty {
		return nil
	}
	defer logging.GetLogData(ctx).AddToExistingTiming("write_duration")()
	if err := w.table.WriteAll(ctx, w.records); err != nil {
		return err
	}
	w.dirty = false
	return nil
}

// Discard drops the snapshot and any pending changes.
func (w *Writer) Discard() {
	w.records = nil
	w.loaded = false
	w.dirty = false
}
