package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

func newTestStorage(t *testing.T) (*Storage, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		TransactionsPath:  filepath.Join(dir, "transactions.csv"),
		CategoriesPath:    filepath.Join(dir, "categories.csv"),
		ExpenseCategories: []string{"Rent"},
		IncomeCategories:  []string{"Salary"},
	}
	s := NewStorage(cfg)
	result, err := s.Initialize(context.Background())
	require.NoError(t, err)
	require.True(t, result.TransactionsCreated)
	require.True(t, result.CategoriesCreated)
	return s, cfg
}

func TestStorage_Initialize(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	result, err := s.Initialize(ctx)
	require.NoError(t, err)
	assert.False(t, result.TransactionsCreated)
	assert.False(t, result.CategoriesCreated)

	names, err := s.Read().Categories.AllNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Other", "Rent", "Salary"}, names)
}

func TestWriter_CommitWritesOnlyDirtyFiles(t *testing.T) {
	s, cfg := newTestStorage(t)
	ctx := context.Background()

	categoriesBefore, err := os.ReadFile(cfg.CategoriesPath)
	require.NoError(t, err)

	w, err := s.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Transaction.Insert(ctx, &ledgerfile.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Timestamp:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Rent",
		Amount:      decimal.RequireFromString("-900.00"),
		Type:        ledgerfile.TransactionTypeExpense,
		Description: "May rent",
	}))
	_, err = w.Category.Exists(ctx, "Rent", ledgerfile.TransactionTypeExpense)
	require.NoError(t, err)
	require.NoError(t, w.Commit(ctx))

	count, err := s.Read().Transactions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	categoriesAfter, err := os.ReadFile(cfg.CategoriesPath)
	require.NoError(t, err)
	assert.Equal(t, categoriesBefore, categoriesAfter)
}

func TestWriter_RollbackLeavesFilesUntouched(t *testing.T) {
	s, cfg := newTestStorage(t)
	ctx := context.Background()

	before, err := os.ReadFile(cfg.CategoriesPath)
	require.NoError(t, err)

	w, err := s.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Category.Add(ctx, "Travel", ledgerfile.TransactionTypeExpense))
	require.NoError(t, w.Rollback())

	after, err := os.ReadFile(cfg.CategoriesPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStorage_WriteWithCancelledContext(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Write(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriter_CommitWithCancelledContext(t *testing.T) {
	s, cfg := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())

	w, err := s.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Category.Add(ctx, "Travel", ledgerfile.TransactionTypeExpense))
	cancel()

	assert.ErrorIs(t, w.Commit(ctx), context.Canceled)

	exists, err := ledgerfile.NewCategoriesTable(cfg.CategoriesPath, nil).ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, exists, ledgerfile.Category{Name: "Travel", Type: ledgerfile.TransactionTypeExpense})
}
