package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
)

type AddCategory struct {
	Name string
	Type ledgerfile.TransactionType
	IAction
}

func (a *AddCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	logging.GetLogData(ctx).AddData("category", a.Name)
	return writer.Category.Add(ctx, a.Name, a.Type)
}

// RenameCategory never rewrites transaction records. InUse tells the caller
// that existing records still carry the old name.
type RenameCategory struct {
	OldName string
	Type    ledgerfile.TransactionType
	NewName string

	InUse bool
	IAction
}

func (r *RenameCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Category.Rename(ctx, r.OldName, r.Type, r.NewName); err != nil {
		return err
	}

	inUse, err := writer.Transaction.InUse(ctx, r.OldName)
	if err != nil {
		return err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("category", r.OldName)
	logData.AddData("new_category", r.NewName)
	logData.AddData("in_use", inUse)
	r.InUse = inUse
	return nil
}

type DeleteCategory struct {
	Name string
	Type ledgerfile.TransactionType
	IAction
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	logging.GetLogData(ctx).AddData("category", d.Name)

	if ledgerfile.IsReservedName(d.Name) {
		return &ledgererr.IntegrityError{Reason: fmt.Sprintf("the reserved category '%s' cannot be deleted", ledgerfile.ReservedCategory)}
	}

	exists, err := writer.Category.Exists(ctx, d.Name, d.Type)
	if err != nil {
		return err
	}
	if !exists {
		return &ledgererr.NotFoundError{Kind: d.Type.String() + " category", Key: d.Name}
	}

	inUse, err := writer.Transaction.InUse(ctx, d.Name)
	if err != nil {
		return err
	}
	if inUse {
		return &ledgererr.IntegrityError{Reason: fmt.Sprintf("category '%s' is used by existing transactions", d.Name)}
	}

	return writer.Category.Delete(ctx, d.Name, d.Type)
}
