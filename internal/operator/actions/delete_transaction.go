package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

type DeleteTransaction struct {
	ID uuid.UUID

	// Deleted reports whether a record was removed.
	Deleted bool
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transaction.Delete(ctx, d.ID)
	if err != nil {
		return err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("transaction_id", d.ID.String())
	logData.AddData("deleted", deleted)
	d.Deleted = deleted
	return nil
}
