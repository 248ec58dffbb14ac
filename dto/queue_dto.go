package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIQueue struct {
	Id          string      `json:"id"`
	WorkspaceId string      `json:"workspace_id"`
	Name        string      `json:"name"`
	Color       null.String `json:"color"`
	CreatedAt   time.Time   `json:"created_at"`
}

func AdaptQueueDto(queue models.Queue) APIQueue {
	return APIQueue{
		Id:          queue.Id,
		WorkspaceId: queue.WorkspaceId,
		Name:        queue.Name,
		Color:       null.StringFromPtr(queue.Color),
		CreatedAt:   queue.CreatedAt,
	}
}

type CreateQueueBody struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

type UpdateQueueBody struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
