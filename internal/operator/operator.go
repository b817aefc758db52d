package operator

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// Operator is the only mutation path into storage. Each action runs against
// a fresh snapshot that is committed as a whole or not at all.
type Operator struct {
	storage *storage.Storage
}

func NewOperator(s *storage.Storage) *Operator {
	return &Operator{
		storage: s,
	}
}

// Process runs action synchronously.
func (o *Operator) Process(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = action.Perform(ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		return err
	}

	if err = writer.Commit(ctx); err != nil {
		_ = writer.Rollback()
		return err
	}

	return nil
}
