package ledgerfile

import (
	"context"
	"strings"
)

// ReservedCategory is the catch-all category present for every type.
const ReservedCategory = "Other"

// Category represents a category registry record.
type Category struct {
	Name string
	Type TransactionType
}

// IsReserved reports whether the category is the undeletable catch-all.
func (c Category) IsReserved() bool {
	return IsReservedName(c.Name)
}

// IsReservedName matches the reserved category name case-insensitively.
func IsReservedName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), ReservedCategory)
}

// ICategoryTable defines the interface for category file operations.
// This abstraction allows swapping the implementation (e.g. CSV) without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	EnsureInitialized(ctx context.Context) (created bool, err error)
	ReadAll(ctx context.Context) ([]Category, error)
	WriteAll(ctx context.Context, categories []Category) error
}
