package transaction

import (
	"strings"

	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// TransactionFilter specifies filters for listing transactions. Nil fields
// match everything.
type TransactionFilter struct {
	Type     *ledgerfile.TransactionType
	Category *string
}

// Matches reports whether tx passes the filter. Category comparison ignores
// case and surrounding whitespace.
func (f *TransactionFilter) Matches(tx *ledgerfile.Transaction) bool {
	if f == nil {
		return true
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.Category != nil && !sameCategory(tx.Category, *f.Category) {
		return false
	}
	return true
}

func sameCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
