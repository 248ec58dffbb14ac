package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/zapdesk/zapdesk-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

// TransactionFactoryStub runs the callback against the same pgxmock pool,
// without an actual transaction.
type TransactionFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewTransactionFactoryStub(mock pgxmock.PgxPoolIface) TransactionFactoryStub {
	return TransactionFactoryStub{Mock: mock}
}

type pgTransactionStub struct {
	pgxmock.PgxPoolIface
}

func (stub pgTransactionStub) RawTx() pgx.Tx {
	return nil
}

func (stub TransactionFactoryStub) Transaction(ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(pgTransactionStub{stub.Mock})
}
