package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIContact struct {
	Id          string      `json:"id"`
	WorkspaceId string      `json:"workspace_id"`
	PhoneNumber string      `json:"phone_number"`
	Name        string      `json:"name"`
	AvatarUrl   null.String `json:"avatar_url"`
	CreatedAt   time.Time   `json:"created_at"`
}

func AdaptContactDto(contact models.Contact) APIContact {
	return APIContact{
		Id:          contact.Id,
		WorkspaceId: contact.WorkspaceId,
		PhoneNumber: contact.PhoneNumber,
		Name:        contact.Name,
		AvatarUrl:   null.StringFromPtr(contact.AvatarUrl),
		CreatedAt:   contact.CreatedAt,
	}
}
