package service

import (
	"context"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage    *storage.Storage
	operator   *operator.Operator
	rules      actions.Rules
	sourcePath string
	log        *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	store *storage.Storage,
	op *operator.Operator,
	rules actions.Rules,
	sourcePath string,
	log *logrus.Logger,
) *TransactionService {
	return &TransactionService{
		storage:    store,
		operator:   op,
		rules:      rules,
		sourcePath: sourcePath,
		log:        log,
	}
}

// CreateTransaction validates fields, assigns a new id and persists the record.
func (s *TransactionService) CreateTransaction(ctx context.Context, fields TransactionFields) (*Transaction, error) {
	var result *Transaction
	err := logging.Operation(ctx, "CreateTransaction", s.log, func(ctx context.Context, _ *logging.LogData) error {
		action := &actions.CreateTransaction{Fields: fieldsToRaw(fields), Rules: s.rules}
		if err := s.operator.Process(ctx, action); err != nil {
			return err
		}
		result = transactionFromStorage(action.Created)
		return nil
	})
	return result, err
}

// GetTransaction returns nil without error when no record has the id.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Read().Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return transactionFromStorage(row), nil
}

// ListTransactions returns the records matching filter in stored order.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Read().Transactions.List(ctx, filterToStorage(filter))
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = *transactionFromStorage(row)
	}
	return convertedTransactions, nil
}

// UpdateTransaction merges update over the stored record and re-validates
// the result. The id never changes.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, update TransactionUpdate) (*Transaction, error) {
	var result *Transaction
	err := logging.Operation(ctx, "UpdateTransaction", s.log, func(ctx context.Context, _ *logging.LogData) error {
		action := &actions.UpdateTransaction{ID: id, Update: updateToAction(update), Rules: s.rules}
		if err := s.operator.Process(ctx, action); err != nil {
			return err
		}
		result = transactionFromStorage(action.Updated)
		return nil
	})
	return result, err
}

// DeleteTransaction reports whether a record was removed. An unknown id is
// not an error and leaves the file untouched.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := logging.Operation(ctx, "DeleteTransaction", s.log, func(ctx context.Context, _ *logging.LogData) error {
		action := &actions.DeleteTransaction{ID: id}
		if err := s.operator.Process(ctx, action); err != nil {
			return err
		}
		deleted = action.Deleted
		return nil
	})
	return deleted, err
}

// ExportCopy atomically writes the current record set to dest and returns
// the number of records written.
func (s *TransactionService) ExportCopy(ctx context.Context, dest string) (int, error) {
	var count int
	err := logging.Operation(ctx, "ExportCopy", s.log, func(ctx context.Context, logData *logging.LogData) error {
		logData.AddData("destination", dest)
		if filepath.Clean(dest) == filepath.Clean(s.sourcePath) {
			return errors.Errorf("export destination %s is the ledger file itself", dest)
		}

		rows, err := s.storage.Read().Transactions.List(ctx, nil)
		if err != nil {
			return err
		}

		table := ledgerfile.NewTransactionsTable(dest)
		if _, err = table.EnsureInitialized(ctx); err != nil {
			return errors.Wrap(err, "preparing export destination")
		}
		if err = table.WriteAll(ctx, rows); err != nil {
			return errors.Wrap(err, "writing export")
		}

		count = len(rows)
		logData.AddData("record_count", count)
		return nil
	})
	return count, err
}
