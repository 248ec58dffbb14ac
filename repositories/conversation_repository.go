package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func selectConversationsWithContact() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(columnsNames("c", dbmodels.SelectConversationColumn)...).
		Column("ct.phone_number AS contact_phone_number").
		Column("ct.name AS contact_name").
		Column("ct.avatar_url AS contact_avatar_url").
		From(dbmodels.TABLE_CONVERSATIONS + " AS c").
		Join(dbmodels.TABLE_CONTACTS + " AS ct ON ct.id = c.contact_id")
}

func (repo *ZapdeskDbRepository) GetConversationById(ctx context.Context, exec Executor,
	conversationId string,
) (models.Conversation, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Conversation{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		selectConversationsWithContact().Where(squirrel.Eq{"c.id": conversationId}),
		dbmodels.AdaptConversationWithContact,
	)
}

func (repo *ZapdeskDbRepository) ListConversations(ctx context.Context, exec Executor,
	filters models.ConversationFilters,
) ([]models.Conversation, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := selectConversationsWithContact().
		Where(squirrel.Eq{"c.workspace_id": filters.WorkspaceId}).
		OrderBy("c.last_message_at DESC NULLS LAST", "c.created_at DESC")

	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"c.status": string(*filters.Status)})
	}
	if filters.QueueId != nil {
		query = query.Where(squirrel.Eq{"c.queue_id": *filters.QueueId})
	}
	if filters.AssignedUserId != nil {
		query = query.Where(squirrel.Eq{"c.assigned_user_id": string(*filters.AssignedUserId)})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptConversationWithContact)
}

func (repo *ZapdeskDbRepository) CreateConversation(ctx context.Context, exec Executor,
	newConversationId string, input models.CreateConversationInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONVERSATIONS).
			Columns(
				"id",
				"workspace_id",
				"contact_id",
				"channel_id",
				"queue_id",
				"status",
			).
			Values(
				newConversationId,
				input.WorkspaceId,
				input.ContactId,
				input.ChannelId,
				input.QueueId,
				string(models.ConversationPending),
			),
	)
	return err
}

// AssignConversation performs the conditional assignment. The WHERE clause on
// assigned_user_id IS NULL makes the store pick at most one winner among
// concurrent callers; everyone else sees zero rows updated.
func (repo *ZapdeskDbRepository) AssignConversation(ctx context.Context, exec Executor,
	conversationId string, workspaceId string, userId models.UserId,
) (assigned bool, err error) {
	if err := validateDbExecutor(exec); err != nil {
		return false, err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONVERSATIONS).
			Set("assigned_user_id", string(userId)).
			Set("status", string(models.ConversationActive)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": conversationId}).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			Where(squirrel.Eq{"assigned_user_id": nil}).
			Where(squirrel.NotEq{"status": string(models.ConversationClosed)}),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// CloseConversation closes the conversation unless it already is closed, and
// reports whether this call did the closing.
func (repo *ZapdeskDbRepository) CloseConversation(ctx context.Context, exec Executor,
	conversationId string, workspaceId string,
) (closed bool, err error) {
	if err := validateDbExecutor(exec); err != nil {
		return false, err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONVERSATIONS).
			Set("status", string(models.ConversationClosed)).
			Set("closed_at", squirrel.Expr("NOW()")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": conversationId}).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			Where(squirrel.NotEq{"status": string(models.ConversationClosed)}),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (repo *ZapdeskDbRepository) TouchConversationLastMessageAt(ctx context.Context, exec Executor,
	conversationId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONVERSATIONS).
			Set("last_message_at", squirrel.Expr("NOW()")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": conversationId}),
	)
	return err
}

// FindOpenConversationByContact returns the current non-closed conversation of
// a contact, used by the inbound webhook to append instead of creating a new
// one.
func (repo *ZapdeskDbRepository) FindOpenConversationByContact(ctx context.Context, exec Executor,
	workspaceId string, contactId string,
) (*models.Conversation, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectConversationColumn...).
			From(dbmodels.TABLE_CONVERSATIONS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			Where(squirrel.Eq{"contact_id": contactId}).
			Where(squirrel.NotEq{"status": string(models.ConversationClosed)}).
			OrderBy("created_at DESC").
			Limit(1),
		dbmodels.AdaptConversation,
	)
}

func (repo *ZapdeskDbRepository) CountConversationsInQueue(ctx context.Context, exec Executor,
	queueId string,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	query := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_CONVERSATIONS).
		Where(squirrel.Eq{"queue_id": queueId})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
