package storage

import (
	"github.com/carson-networks/budget-ledger/internal/storage/category"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
	"github.com/carson-networks/budget-ledger/internal/storage/transaction"
)

type Reader struct {
	Categories   *category.Reader
	Transactions *transaction.Reader
}

func NewReader(transactions ledgerfile.ITransactionTable, categories ledgerfile.ICategoryTable) *Reader {
	return &Reader{
		Categories:   category.NewReader(categories),
		Transactions: transaction.NewReader(transactions),
	}
}
