package ledgerfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
)

// CategoryHeader is the column order written to the categories file.
var CategoryHeader = []string{"name", "type"}

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories CSV file.
type CategoriesTable struct {
	path     string
	defaults []Category
}

// NewCategoriesTable creates a CategoriesTable backed by path. defaults seed
// the file the first time it is created; the reserved entries are always added.
func NewCategoriesTable(path string, defaults []Category) *CategoriesTable {
	return &CategoriesTable{path: path, defaults: withReserved(defaults)}
}

// Path returns the canonical file path.
func (t *CategoriesTable) Path() string {
	return t.path
}

// EnsureInitialized creates the file pre-populated with the default set if
// it is absent.
func (t *CategoriesTable) EnsureInitialized(_ context.Context) (bool, error) {
	rows := make([][]string, len(t.defaults))
	for i, c := range t.defaults {
		rows[i] = formatCategoryRow(c)
	}
	return ensureCSV(t.path, CategoryHeader, rows)
}

// ReadAll loads every category in file order.
func (t *CategoriesTable) ReadAll(_ context.Context) ([]Category, error) {
	header, rows, err := readCSV(t.path)
	if err != nil {
		return nil, err
	}
	for _, required := range CategoryHeader {
		if _, ok := header[required]; !ok {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: 1, Err: fmt.Errorf("missing %q column", required)}
		}
	}

	result := make([]Category, 0, len(rows))
	for _, row := range rows {
		name, _ := header.get(row.fields, "name")
		if name == "" {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: row.line, Err: fmt.Errorf("empty category name")}
		}
		rawType, _ := header.get(row.fields, "type")
		categoryType, err := ParseTransactionType(rawType)
		if err != nil {
			return nil, &ledgererr.CorruptFileError{Path: t.path, Line: row.line, Err: err}
		}
		result = append(result, Category{Name: name, Type: categoryType})
	}
	return result, nil
}

// WriteAll atomically replaces the file with the given categories.
func (t *CategoriesTable) WriteAll(_ context.Context, categories []Category) error {
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = formatCategoryRow(c)
	}
	return atomicWriteCSV(t.path, CategoryHeader, rows)
}

func formatCategoryRow(c Category) []string {
	return []string{c.Name, c.Type.String()}
}

func withReserved(defaults []Category) []Category {
	out := make([]Category, 0, len(defaults)+len(TransactionTypes))
	seen := make(map[string]struct{}, len(defaults))
	for _, c := range defaults {
		name := strings.TrimSpace(c.Name)
		if name == "" || !c.Type.Valid() {
			continue
		}
		key := c.Type.String() + "/" + strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Category{Name: name, Type: c.Type})
	}
	for _, t := range TransactionTypes {
		key := t.String() + "/" + strings.ToLower(ReservedCategory)
		if _, ok := seen[key]; ok {
			continue
		}
		out = append(out, Category{Name: ReservedCategory, Type: t})
	}
	return out
}
