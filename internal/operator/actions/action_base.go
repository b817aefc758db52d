package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/validation"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Rules is the validation policy applied by the transaction actions.
type Rules struct {
	Validator *validation.Validator
	// EnforceCategories restricts categories to the registry. When false any
	// non-empty category is accepted.
	EnforceCategories bool
}

func (r Rules) allowedCategories(ctx context.Context, writer *storage.Writer) ([]string, error) {
	if !r.EnforceCategories {
		return nil, nil
	}
	return writer.Category.AllNames(ctx)
}

func (r Rules) validate(ctx context.Context, writer *storage.Writer, raw validation.RawTransaction) (*validation.Normalized, error) {
	allowed, err := r.allowedCategories(ctx, writer)
	if err != nil {
		return nil, err
	}
	return r.Validator.Transaction(raw, allowed)
}
