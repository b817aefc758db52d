package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/storage"
	"github.com/carson-networks/budget-ledger/internal/storage/ledgerfile"
	"github.com/carson-networks/budget-ledger/internal/validation"
)

type CreateTransaction struct {
	Fields validation.RawTransaction
	Rules  Rules

	// Created is set once Perform succeeds.
	Created *ledgerfile.Transaction
	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	normalized, err := c.Rules.validate(ctx, writer, c.Fields)
	if err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return errors.Wrap(err, "generating transaction id")
	}

	tx := &ledgerfile.Transaction{
		ID:          id,
		Timestamp:   normalized.Timestamp,
		Category:    normalized.Category,
		Amount:      normalized.Amount,
		Type:        normalized.Type,
		Description: normalized.Description,
	}
	if err = writer.Transaction.Insert(ctx, tx); err != nil {
		return err
	}

	logging.GetLogData(ctx).AddData("transaction_id", id.String())
	c.Created = tx
	return nil
}
