package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) ListMessagesOfConversation(ctx context.Context, exec Executor,
	conversationId string,
) ([]models.Message, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMessageColumn...).
			From(dbmodels.TABLE_MESSAGES).
			Where(squirrel.Eq{"conversation_id": conversationId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptMessage,
	)
}

func (repo *ZapdeskDbRepository) CreateMessage(ctx context.Context, exec Executor,
	newMessageId string, input models.CreateMessageInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	var senderUserId *string
	if input.SenderUserId != nil {
		id := string(*input.SenderUserId)
		senderUserId = &id
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MESSAGES).
			Columns(
				"id",
				"conversation_id",
				"workspace_id",
				"direction",
				"type",
				"content",
				"media_url",
				"sender_user_id",
				"gateway_message_id",
			).
			Values(
				newMessageId,
				input.ConversationId,
				input.WorkspaceId,
				string(input.Direction),
				string(input.Type),
				input.Content,
				input.MediaUrl,
				senderUserId,
				input.GatewayMessageId,
			),
	)
	return err
}

// MessageByGatewayId deduplicates webhook deliveries: the gateway may send the
// same message event more than once.
func (repo *ZapdeskDbRepository) MessageByGatewayId(ctx context.Context, exec Executor,
	workspaceId string, gatewayMessageId string,
) (*models.Message, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMessageColumn...).
			From(dbmodels.TABLE_MESSAGES).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			Where(squirrel.Eq{"gateway_message_id": gatewayMessageId}).
			Limit(1),
		dbmodels.AdaptMessage,
	)
}
