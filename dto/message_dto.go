package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIMessage struct {
	Id             string      `json:"id"`
	ConversationId string      `json:"conversation_id"`
	WorkspaceId    string      `json:"workspace_id"`
	Direction      string      `json:"direction"`
	Type           string      `json:"type"`
	Content        string      `json:"content"`
	MediaUrl       null.String `json:"media_url"`
	SenderUserId   null.String `json:"sender_user_id"`
	CreatedAt      time.Time   `json:"created_at"`
}

func AdaptMessageDto(message models.Message) APIMessage {
	return APIMessage{
		Id:             message.Id,
		ConversationId: message.ConversationId,
		WorkspaceId:    message.WorkspaceId,
		Direction:      string(message.Direction),
		Type:           string(message.Type),
		Content:        message.Content,
		MediaUrl:       null.StringFromPtr(message.MediaUrl),
		SenderUserId:   userIdFromPtr(message.SenderUserId),
		CreatedAt:      message.CreatedAt,
	}
}

type SendMessageBody struct {
	Content string `json:"content" binding:"required"`
	Type    string `json:"type"`
}
