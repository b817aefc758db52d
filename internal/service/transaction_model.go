package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
	"github.com/carson-networks/budget-ledger/internal/validation"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

func (t TransactionType) String() string {
	return transactionTypeToStorage(t).String()
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Timestamp   time.Time
	Category    string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
}

// TimestampString renders the timestamp in its stored form.
func (t Transaction) TimestampString() string {
	return validation.FormatTimestamp(t.Timestamp)
}

// AmountString renders the signed amount with two fractional digits.
func (t Transaction) AmountString() string {
	return validation.FormatAmount(t.Amount)
}

// TransactionFields is unvalidated input for a new transaction.
type TransactionFields struct {
	Timestamp   string
	Category    string
	Amount      string
	Type        string
	Description string
}

// TransactionUpdate lists the fields to change; unset fields keep their
// current value.
type TransactionUpdate struct {
	Timestamp   omit.Val[string]
	Category    omit.Val[string]
	Amount      omit.Val[string]
	Type        omit.Val[string]
	Description omit.Val[string]
}

// TransactionFilter narrows ListTransactions. Nil fields match everything.
type TransactionFilter struct {
	Type     *TransactionType
	Category *string
}

func transactionTypeToStorage(t TransactionType) ledgerfile.TransactionType {
	return ledgerfile.TransactionType(t)
}

func transactionTypeFromStorage(t ledgerfile.TransactionType) TransactionType {
	return TransactionType(t)
}

func transactionFromStorage(row *ledgerfile.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID,
		Timestamp:   row.Timestamp,
		Category:    row.Category,
		Amount:      row.Amount,
		Type:        transactionTypeFromStorage(row.Type),
		Description: row.Description,
	}
}

func fieldsToRaw(f TransactionFields) validation.RawTransaction {
	return validation.RawTransaction{
		Timestamp:   f.Timestamp,
		Category:    f.Category,
		Amount:      f.Amount,
		Type:        f.Type,
		Description: f.Description,
	}
}

func updateToAction(u TransactionUpdate) actions.TransactionUpdate {
	return actions.TransactionUpdate{
		Timestamp:   u.Timestamp,
		Category:    u.Category,
		Amount:      u.Amount,
		Type:        u.Type,
		Description: u.Description,
	}
}

func filterToStorage(f *TransactionFilter) *transaction.TransactionFilter {
	if f == nil {
		return nil
	}
	result := &transaction.TransactionFilter{Category: f.Category}
	if f.Type != nil {
		t := transactionTypeToStorage(*f.Type)
		result.Type = &t
	}
	return result
}
