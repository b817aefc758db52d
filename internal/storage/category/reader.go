package category

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

type Reader struct {
	load func(ctx context.Context) ([]ledgerfile.Category, error)
}

func NewReader(table ledgerfile.ICategoryTable) *Reader {
	return &Reader{
		load: func(ctx context.Context) ([]ledgerfile.Category, error) {
			defer logging.GetLogData(ctx).AddToExistingTiming("read_duration")()
			return table.ReadAll(ctx)
		},
	}
}

// List returns the names of the given type sorted case-insensitively. The
// reserved name is always included.
func (r *Reader) List(ctx context.Context, categoryType ledgerfile.TransactionType) ([]string, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories)+1)
	hasReserved := false
	for _, c := range categories {
		if c.Type != categoryType {
			continue
		}
		if c.IsReserved() {
			hasReserved = true
		}
		names = append(names, c.Name)
	}
	if !hasReserved {
		names = append(names, ledgerfile.ReservedCategory)
	}
	sortNames(names)
	return names, nil
}

// AllNames returns the distinct names across both types, sorted.
func (r *Reader) AllNames(ctx context.Context) ([]string, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{ledgerfile.ReservedCategory: {}}
	names := []string{ledgerfile.ReservedCategory}
	for _, c := range categories {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	sortNames(names)
	return names, nil
}

// Exists matches name case-insensitively within categoryType.
func (r *Reader) Exists(ctx context.Context, name string, categoryType ledgerfile.TransactionType) (bool, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	return find(categories, name, categoryType) >= 0, nil
}
