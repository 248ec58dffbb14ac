package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) CreateActivity(ctx context.Context, exec Executor,
	newActivityId string, input models.CreateActivityInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	var userId *string
	if input.UserId != nil {
		id := string(*input.UserId)
		userId = &id
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ACTIVITIES).
			Columns("id", "workspace_id", "user_id", "type", "conversation_id", "details").
			Values(newActivityId, input.WorkspaceId, userId, string(input.Type),
				input.ConversationId, input.Details),
	)
	return err
}

func (repo *ZapdeskDbRepository) ListActivitiesOfConversation(ctx context.Context, exec Executor,
	conversationId string,
) ([]models.Activity, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectActivityColumn...).
			From(dbmodels.TABLE_ACTIVITIES).
			Where(squirrel.Eq{"conversation_id": conversationId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptActivity,
	)
}
