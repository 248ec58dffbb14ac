package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIActivity struct {
	Id             string         `json:"id"`
	WorkspaceId    string         `json:"workspace_id"`
	UserId         null.String    `json:"user_id"`
	Type           string         `json:"type"`
	ConversationId null.String    `json:"conversation_id"`
	Details        map[string]any `json:"details,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func AdaptActivityDto(activity models.Activity) APIActivity {
	return APIActivity{
		Id:             activity.Id,
		WorkspaceId:    activity.WorkspaceId,
		UserId:         userIdFromPtr(activity.UserId),
		Type:           string(activity.Type),
		ConversationId: null.StringFromPtr(activity.ConversationId),
		Details:        activity.Details,
		CreatedAt:      activity.CreatedAt,
	}
}
