package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

type Storage struct {
	Transactions ledgerfile.ITransactionTable
	Categories   ledgerfile.ICategoryTable
}

// NewStorage builds file-backed tables from env. Nothing is read or created
// until Initialize is called.
func NewStorage(env *config.Config) *Storage {
	return &Storage{
		Transactions: ledgerfile.NewTransactionsTable(env.TransactionsPath),
		Categories:   ledgerfile.NewCategoriesTable(env.CategoriesPath, DefaultCategories(env)),
	}
}

// DefaultCategories converts the configured seed names into registry entries.
func DefaultCategories(env *config.Config) []ledgerfile.Category {
	result := make([]ledgerfile.Category, 0, len(env.ExpenseCategories)+len(env.IncomeCategories))
	for _, name := range env.ExpenseCategories {
		result = append(result, ledgerfile.Category{Name: name, Type: ledgerfile.TransactionTypeExpense})
	}
	for _, name := range env.IncomeCategories {
		result = append(result, ledgerfile.Category{Name: name, Type: ledgerfile.TransactionTypeIncome})
	}
	return result
}

// InitResult reports which backing files Initialize had to create.
type InitResult struct {
	TransactionsCreated bool
	CategoriesCreated   bool
}

// Initialize creates any missing backing file.
func (s *Storage) Initialize(ctx context.Context) (*InitResult, error) {
	var result InitResult
	var err error

	result.TransactionsCreated, err = s.Transactions.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing transactions")
	}
	result.CategoriesCreated, err = s.Categories.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing categories")
	}
	return &result, nil
}

// Read returns a Reader that rescans the files on every query.
func (s *Storage) Read() *Reader {
	return NewReader(s.Transactions, s.Categories)
}

// Write starts a mutation. It fails only if ctx is already done.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewWriter(s.Transactions, s.Categories), nil
}
