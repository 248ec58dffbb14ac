package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	pgxmock.PgxPoolIface
}

func (m mockExecutor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.PgxPoolIface.Exec(ctx, sql, args...)
}

func (m mockExecutor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.PgxPoolIface.Query(ctx, sql, args...)
}

func (m mockExecutor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.PgxPoolIface.QueryRow(ctx, sql, args...)
}

func TestAssignConversation(t *testing.T) {
	conversationId := "c2f3ce31-d401-4fb2-91f7-4e29031e55d0"
	workspaceId := "0191f9be-7f86-4f5c-a3a8-0047ad23e61c"
	userId := "f1b129dc-0d4f-4fe6-9291-4a1a2e87a3e9"

	expectedSql := `UPDATE conversations SET assigned_user_id = \$1, status = \$2, updated_at = NOW\(\) WHERE id = \$3 AND workspace_id = \$4 AND assigned_user_id IS NULL AND status <> \$5`

	t.Run("the caller wins the assignment", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(expectedSql).
			WithArgs(userId, "active", conversationId, workspaceId, "closed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewZapdeskDbRepository()
		assigned, err := repo.AssignConversation(context.Background(),
			mockExecutor{pool}, conversationId, workspaceId, "f1b129dc-0d4f-4fe6-9291-4a1a2e87a3e9")

		assert.NoError(t, err)
		assert.True(t, assigned)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("the conversation is already assigned", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(expectedSql).
			WithArgs(userId, "active", conversationId, workspaceId, "closed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewZapdeskDbRepository()
		assigned, err := repo.AssignConversation(context.Background(),
			mockExecutor{pool}, conversationId, workspaceId, "f1b129dc-0d4f-4fe6-9291-4a1a2e87a3e9")

		assert.NoError(t, err)
		assert.False(t, assigned)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("nil executor is rejected", func(t *testing.T) {
		repo := NewZapdeskDbRepository()
		_, err := repo.AssignConversation(context.Background(),
			nil, conversationId, workspaceId, "f1b129dc-0d4f-4fe6-9291-4a1a2e87a3e9")
		assert.Error(t, err)
	})
}

func TestCloseConversation(t *testing.T) {
	conversationId := "c2f3ce31-d401-4fb2-91f7-4e29031e55d0"
	workspaceId := "0191f9be-7f86-4f5c-a3a8-0047ad23e61c"

	expectedSql := `UPDATE conversations SET status = \$1, closed_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$2 AND workspace_id = \$3 AND status <> \$4`

	t.Run("closes an open conversation", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(expectedSql).
			WithArgs("closed", conversationId, workspaceId, "closed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewZapdeskDbRepository()
		closed, err := repo.CloseConversation(context.Background(),
			mockExecutor{pool}, conversationId, workspaceId)

		assert.NoError(t, err)
		assert.True(t, closed)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("already closed", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(expectedSql).
			WithArgs("closed", conversationId, workspaceId, "closed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewZapdeskDbRepository()
		closed, err := repo.CloseConversation(context.Background(),
			mockExecutor{pool}, conversationId, workspaceId)

		assert.NoError(t, err)
		assert.False(t, closed)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}
