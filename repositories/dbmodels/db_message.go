package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBMessage struct {
	Id               string    `db:"id"`
	ConversationId   string    `db:"conversation_id"`
	WorkspaceId      string    `db:"workspace_id"`
	Direction        string    `db:"direction"`
	Type             string    `db:"type"`
	Content          string    `db:"content"`
	MediaUrl         *string   `db:"media_url"`
	SenderUserId     *string   `db:"sender_user_id"`
	GatewayMessageId *string   `db:"gateway_message_id"`
	CreatedAt        time.Time `db:"created_at"`
}

const TABLE_MESSAGES = "messages"

var SelectMessageColumn = utils.ColumnList[DBMessage]()

func AdaptMessage(db DBMessage) (models.Message, error) {
	message := models.Message{
		Id:               db.Id,
		ConversationId:   db.ConversationId,
		WorkspaceId:      db.WorkspaceId,
		Direction:        models.MessageDirection(db.Direction),
		Type:             models.MessageType(db.Type),
		Content:          db.Content,
		MediaUrl:         db.MediaUrl,
		GatewayMessageId: db.GatewayMessageId,
		CreatedAt:        db.CreatedAt,
	}
	if db.SenderUserId != nil {
		userId := models.UserId(*db.SenderUserId)
		message.SenderUserId = &userId
	}
	return message, nil
}
