package ledgerfile

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the canonical on-disk form of a transaction timestamp.
const TimestampLayout = "2006-01-02T15:04:05"

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID
	Timestamp   time.Time
	Category    string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
}

// Clone returns a copy that shares no mutable state with t.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// ITransactionTable defines the interface for transaction file operations.
// This abstraction allows swapping the implementation (e.g. CSV) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	EnsureInitialized(ctx context.Context) (created bool, err error)
	ReadAll(ctx context.Context) ([]*Transaction, error)
	WriteAll(ctx context.Context, transactions []*Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
}
