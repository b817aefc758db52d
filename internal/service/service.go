package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/validation"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage. env supplies the
// validation policy; log receives one entry per operation.
func NewService(store *storage.Storage, env *config.Config, log *logrus.Logger) *Service {
	op := operator.NewOperator(store)
	rules := actions.Rules{
		Validator:         validation.NewValidator(env.DisallowFuture),
		EnforceCategories: env.EnforceCategories,
	}

	return &Service{
		Transaction: NewTransactionService(store, op, rules, env.TransactionsPath, log),
		Category:    NewCategoryService(store, op, log),
	}
}
