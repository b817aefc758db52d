package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// CategoryService handles category registry business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator *operator.Operator
	log      *logrus.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, op *operator.Operator, log *logrus.Logger) *CategoryService {
	return &CategoryService{storage: store, operator: op, log: log}
}

// EnsureInitialized creates any missing backing file, seeding the registry.
func (s *CategoryService) EnsureInitialized(ctx context.Context) (*storage.InitResult, error) {
	var result *storage.InitResult
	err := logging.Operation(ctx, "EnsureInitialized", s.log, func(ctx context.Context, logData *logging.LogData) error {
		var err error
		result, err = s.storage.Initialize(ctx)
		if err != nil {
			return err
		}
		logData.AddData("transactions_created", result.TransactionsCreated)
		logData.AddData("categories_created", result.CategoriesCreated)
		return nil
	})
	return result, err
}

// ListCategories returns the names for categoryType, sorted, always
// including the reserved name.
func (s *CategoryService) ListCategories(ctx context.Context, categoryType TransactionType) ([]string, error) {
	return s.storage.Read().Categories.List(ctx, transactionTypeToStorage(categoryType))
}

// AllCategoryNames returns the distinct names across both types.
func (s *CategoryService) AllCategoryNames(ctx context.Context) ([]string, error) {
	return s.storage.Read().Categories.AllNames(ctx)
}

func (s *CategoryService) AddCategory(ctx context.Context, name string, categoryType TransactionType) error {
	return logging.Operation(ctx, "AddCategory", s.log, func(ctx context.Context, _ *logging.LogData) error {
		return s.operator.Process(ctx, &actions.AddCategory{Name: name, Type: transactionTypeToStorage(categoryType)})
	})
}

// RenameCategory renames (oldName, categoryType). Existing transactions keep
// the old name; inUse reports whether any still reference it so the caller
// can warn.
func (s *CategoryService) RenameCategory(ctx context.Context, oldName string, categoryType TransactionType, newName string) (bool, error) {
	var inUse bool
	err := logging.Operation(ctx, "RenameCategory", s.log, func(ctx context.Context, _ *logging.LogData) error {
		action := &actions.RenameCategory{OldName: oldName, Type: transactionTypeToStorage(categoryType), NewName: newName}
		if err := s.operator.Process(ctx, action); err != nil {
			return err
		}
		inUse = action.InUse
		return nil
	})
	return inUse, err
}

// DeleteCategory fails for the reserved name and for any name still used by
// a transaction.
func (s *CategoryService) DeleteCategory(ctx context.Context, name string, categoryType TransactionType) error {
	return logging.Operation(ctx, "DeleteCategory", s.log, func(ctx context.Context, _ *logging.LogData) error {
		return s.operator.Process(ctx, &actions.DeleteCategory{Name: name, Type: transactionTypeToStorage(categoryType)})
	})
}

// CategoryInUse reports whether any transaction references name, ignoring case.
func (s *CategoryService) CategoryInUse(ctx context.Context, name string) (bool, error) {
	return s.storage.Read().Transactions.InUse(ctx, name)
}
