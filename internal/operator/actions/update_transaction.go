package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
	"github.com/carson-networks/budget-ledger/internal/validation"
)

// TransactionUpdate holds the fields to change. Unset fields keep their
// stored value.
type TransactionUpdate struct {
	Timestamp   omit.Val[string]
	Category    omit.Val[string]
	Amount      omit.Val[string]
	Type        omit.Val[string]
	Description omit.Val[string]
}

// Merge overlays the set fields on the raw form of existing.
func (u TransactionUpdate) Merge(existing *ledgerfile.Transaction) validation.RawTransaction {
	return validation.RawTransaction{
		Timestamp:   u.Timestamp.GetOr(validation.FormatTimestamp(existing.Timestamp)),
		Category:    u.Category.GetOr(existing.Category),
		Amount:      u.Amount.GetOr(validation.FormatAmount(existing.Amount)),
		Type:        u.Type.GetOr(existing.Type.String()),
		Description: u.Description.GetOr(existing.Description),
	}
}

type UpdateTransaction struct {
	ID     uuid.UUID
	Update TransactionUpdate
	Rules  Rules

	// Updated is set once Perform succeeds.
	Updated *ledgerfile.Transaction
	IAction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &ledgererr.NotFoundError{Kind: "transaction", Key: u.ID.String()}
	}

	normalized, err := u.Rules.validate(ctx, writer, u.Update.Merge(existing))
	if err != nil {
		return err
	}

	tx := &ledgerfile.Transaction{
		ID:          existing.ID,
		Timestamp:   normalized.Timestamp,
		Category:    normalized.Category,
		Amount:      normalized.Amount,
		Type:        normalized.Type,
		Description: normalized.Description,
	}
	if err = writer.Transaction.Replace(ctx, tx); err != nil {
		return err
	}

	logging.GetLogData(ctx).AddData("transaction_id", u.ID.String())
	u.Updated = tx
	return nil
}
