package ledgerfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newTestTransactionsTable(t *testing.T) *TransactionsTable {
	t.Helper()
	table := NewTransactionsTable(filepath.Join(t.TempDir(), "transactions.csv"))
	created, err := table.EnsureInitialized(context.Background())
	require.NoError(t, err)
	require.True(t, created)
	return table
}

func makeTransactions() []*Transaction {
	return []*Transaction{
		{
			ID:          uuid.Must(uuid.NewV4()),
			Timestamp:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Category:    "Earned Income",
			Amount:      decimal.RequireFromString("1000.00"),
			Type:        TransactionTypeIncome,
			Description: "Monthly salary",
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Timestamp:   time.Date(2024, 1, 16, 12, 30, 0, 0, time.UTC),
			Category:    "Food and Dining",
			Amount:      decimal.RequireFromString("-200.00"),
			Type:        TransactionTypeExpense,
			Description: `Groceries, "bulk" run`,
		},
	}
}

func TestTransactionsTable_EnsureInitialized_WritesHeader(t *testing.T) {
	table := newTestTransactionsTable(t)

	data, err := os.ReadFile(table.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,timestamp,category,amount,type,description\n", string(data))

	created, err := table.EnsureInitialized(context.Background())
	assert.NoError(t, err)
	assert.False(t, created, "existing file is left alone")
}

func TestTransactionsTable_EnsureInitialized_CreatesDirectory(t *testing.T) {
	table := NewTransactionsTable(filepath.Join(t.TempDir(), "nested", "ledger", "transactions.csv"))

	created, err := table.EnsureInitialized(context.Background())
	assert.NoError(t, err)
	assert.True(t, created)
	assert.FileExists(t, table.Path())
}

func TestTransactionsTable_RoundTrip(t *testing.T) {
	ctx := context.Background()
	table := newTestTransactionsTable(t)
	want := makeTransactions()

	require.NoError(t, table.WriteAll(ctx, want))

	got, err := table.ReadAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Fatalf("ReadAll mismatch (-want +got):\n%s", diff)
	}

	first, err := os.ReadFile(table.Path())
	require.NoError(t, err)

	require.NoError(t, table.WriteAll(ctx, got))
	again, err := table.ReadAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(got, again, decimalComparer); diff != "" {
		t.Fatalf("second round trip mismatch (-want +got):\n%s", diff)
	}

	second, err := os.ReadFile(table.Path())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestTransactionsTable_WriteAll_FormatsAmountWithTwoDigits(t *testing.T) {
	ctx := context.Background()
	table := newTestTransactionsTable(t)
	tx := makeTransactions()[0]
	tx.Amount = decimal.RequireFromString("12.5")

	require.NoError(t, table.WriteAll(ctx, []*Transaction{tx}))

	data, err := os.ReadFile(table.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), ",12.50,income,")
}

func TestTransactionsTable_WriteAll_RejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	table := newTestTransactionsTable(t)
	txs := makeTransactions()
	txs[1].ID = txs[0].ID

	err := table.WriteAll(ctx, txs)
	assert.True(t, ledgererr.IsIntegrity(err))

	got, err := table.ReadAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransactionsTable_WriteAll_FailureLeavesFileAndNoTemp(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")

	// A non-empty directory at the canonical path makes the final rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(path, "blocker"), 0o755))

	table := NewTransactionsTable(path)
	err := table.WriteAll(ctx, makeTransactions())
	require.Error(t, err)
	assert.True(t, ledgererr.IsIO(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file was cleaned up")
	assert.DirExists(t, filepath.Join(path, "blocker"))
}

func TestTransactionsTable_ReadAll_LegacyFiveColumnFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	id1 := uuid.Must(uuid.NewV4())
	id2 := uuid.Must(uuid.NewV4())
	legacy := "id,datetime,category,amount,description\n" +
		id1.String() + ",2024-01-15T10:00:00,Salary,1000.00,Monthly salary\n" +
		id2.String() + ",2024-01-16T12:30:00, Groceries ,-200.00,Food store\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewTransactionsTable(path).ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, TransactionTypeIncome, got[0].Type)
	assert.Equal(t, TransactionTypeExpense, got[1].Type)
	assert.Equal(t, "Groceries", got[1].Category, "values are trimmed")
	assert.Equal(t, time.Date(2024, 1, 16, 12, 30, 0, 0, time.UTC), got[1].Timestamp)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, legacy, string(after), "reading never rewrites the file")
}

func TestTransactionsTable_ReadAll_CorruptAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "id,timestamp,category,amount,type,description\n" +
		uuid.Must(uuid.NewV4()).String() + ",2024-01-15T10:00:00,Salary,lots,income,Pay\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewTransactionsTable(path).ReadAll(context.Background())
	require.Error(t, err)
	assert.True(t, ledgererr.IsCorrupt(err))

	var corrupt *ledgererr.CorruptFileError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, 2, corrupt.Line)
}

func TestTransactionsTable_ReadAll_MissingIDColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte("timestamp,amount\n"), 0o644))

	_, err := NewTransactionsTable(path).ReadAll(context.Background())
	assert.True(t, ledgererr.IsCorrupt(err))
}

func TestTransactionsTable_ReadAll_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewTransactionsTable(path).ReadAll(context.Background())
	assert.True(t, ledgererr.IsCorrupt(err))
}

func TestTransactionsTable_ReadAll_DuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	id := uuid.Must(uuid.NewV4()).String()
	content := "id,timestamp,category,amount,type,description\n" +
		id + ",2024-01-15T10:00:00,Salary,1.00,income,Pay\n" +
		id + ",2024-01-15T10:00:00,Salary,1.00,income,Pay\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewTransactionsTable(path).ReadAll(context.Background())
	assert.True(t, ledgererr.IsCorrupt(err))
}

func TestTransactionsTable_ReadAll_MissingFile(t *testing.T) {
	_, err := NewTransactionsTable(filepath.Join(t.TempDir(), "absent.csv")).ReadAll(context.Background())
	assert.True(t, ledgererr.IsIO(err))
}

func TestTransactionsTable_FindByID(t *testing.T) {
	ctx := context.Background()
	table := newTestTransactionsTable(t)
	txs := makeTransactions()
	require.NoError(t, table.WriteAll(ctx, txs))

	found, err := table.FindByID(ctx, txs[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, txs[1].Description, found.Description)

	missing, err := table.FindByID(ctx, uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
