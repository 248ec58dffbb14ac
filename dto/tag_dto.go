package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APITag struct {
	Id          string      `json:"id"`
	WorkspaceId string      `json:"workspace_id"`
	Name        string      `json:"name"`
	Color       null.String `json:"color"`
	CreatedAt   time.Time   `json:"created_at"`
}

func AdaptTagDto(tag models.Tag) APITag {
	return APITag{
		Id:          tag.Id,
		WorkspaceId: tag.WorkspaceId,
		Name:        tag.Name,
		Color:       null.StringFromPtr(tag.Color),
		CreatedAt:   tag.CreatedAt,
	}
}

type CreateTagBody struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

type UpdateTagBody struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type AttachTagBody struct {
	TagId string `json:"tag_id" binding:"required"`
}
