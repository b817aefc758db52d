package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// Writer edits an in-memory copy of the registry; see transaction.Writer.
type Writer struct {
	table      ledgerfile.ICategoryTable
	categories []ledgerfile.Category
	loaded     bool
	dirty      bool
	Reader
}

func NewWriter(table ledgerfile.ICategoryTable) *Writer {
	w := &Writer{table: table}
	w.Reader = Reader{load: w.snapshot}
	return w
}

func (w *Writer) snapshot(ctx context.Context) ([]ledgerfile.Category, error) {
	if w.loaded {
		return w.categories, nil
	}
	defer logging.GetLogData(ctx).AddToExistingTiming("read_duration")()
	categories, err := w.table.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	w.categories = categories
	w.loaded = true
	return w.categories, nil
}

// Add appends (name, type). The pair must not exist, ignoring case.
func (w *Writer) Add(ctx context.Context, name string, categoryType ledgerfile.TransactionType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ledgererr.NewValidation("category", "category name is required")
	}
	categories, err := w.snapshot(ctx)
	if err != nil {
		return err
	}
	if find(categories, name, categoryType) >= 0 || ledgerfile.IsReservedName(name) {
		return ledgererr.NewValidation("category", "%s category '%s' already exists", categoryType, name)
	}
	w.categories = append(w.categories, ledgerfile.Category{Name: name, Type: categoryType})
	w.dirty = true
	return nil
}

// Rename changes the name of (oldName, type) in place. Transaction records
// are not touched.
func (w *Writer) Rename(ctx context.Context, oldName string, categoryType ledgerfile.TransactionType, newName string) error {
	if ledgerfile.IsReservedName(oldName) {
		return &ledgererr.IntegrityError{Reason: fmt.Sprintf("the reserved category '%s' cannot be renamed", ledgerfile.ReservedCategory)}
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ledgererr.NewValidation("category", "category name is required")
	}
	categories, err := w.snapshot(ctx)
	if err != nil {
		return err
	}

	idx := find(categories, oldName, categoryType)
	if idx < 0 {
		return &ledgererr.NotFoundError{Kind: categoryType.String() + " category", Key: oldName}
	}
	if existing := find(categories, newName, categoryType); (existing >= 0 && existing != idx) || ledgerfile.IsReservedName(newName) {
		return ledgererr.NewValidation("category", "%s category '%s' already exists", categoryType, newName)
	}

	w.categories[idx].Name = newName
	w.dirty = true
	return nil
}

// Delete removes (name, type). The caller is responsible for the in-use
// check since it needs the transaction records.
func (w *Writer) Delete(ctx context.Context, name string, categoryType ledgerfile.TransactionType) error {
	if ledgerfile.IsReservedName(name) {
		return &ledgererr.IntegrityError{Reason: fmt.Sprintf("the reserved category '%s' cannot be deleted", ledgerfile.ReservedCategory)}
	}
	categories, err := w.snapshot(ctx)
	if err != nil {
		return err
	}

	idx := find(categories, name, categoryType)
	if idx < 0 {
		return &ledgererr.NotFoundError{Kind: categoryType.String() + " category", Key: name}
	}
	w.categories = append(w.categories[:idx:idx], w.categories[idx+1:]...)
	w.dirty = true
	return nil
}

func (w *Writer) Dirty() bool {
	return w.dirty
}

// Flush writes the registry if it was modified.
func (w *Writer) Flush(ctx context.Context) error {
	if !w.dirty {
		return nil
	}
	defer logging.GetLogData(ctx).AddToExistingTiming("write_duration")()
	if err := w.table.WriteAll(ctx, w.categories); err != nil {
		return err
	}
	w.dirty = false
	return nil
}

func (w *Writer) Discard() {
	w.categories = nil
	w.loaded = false
	w.dirty = false
}
