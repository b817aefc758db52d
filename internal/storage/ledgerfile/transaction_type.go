package ledgerfile

import (
	"fmt"
	"strings"
)

// TransactionType is the income/expense discriminator stored with every
// transaction and category.
type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

// TransactionTypes lists every type in display order.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeIncome:
		return "income"
	case TransactionTypeExpense:
		return "expense"
	default:
		return fmt.Sprintf("TransactionType(%d)", int8(t))
	}
}

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ParseTransactionType matches the canonical words case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return TransactionTypeIncome, nil
	case "expense":
		return TransactionTypeExpense, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}
