package mocks

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
)

// TransactionFactory runs the callback against TxMock without an actual
// database transaction. It swallows ErrIgnoreRollBackError the same way
// repositories.ExecutorGetter.Transaction does, so tests observe the error
// the caller would actually see.
type TransactionFactory struct {
	TxMock *Transaction
}

func (t *TransactionFactory) Transaction(ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	err := fn(t.TxMock)
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return err
}
