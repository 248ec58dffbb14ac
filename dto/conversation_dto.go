package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
)

type APIConversation struct {
	Id             string      `json:"id"`
	WorkspaceId    string      `json:"workspace_id"`
	ContactId      string      `json:"contact_id"`
	ChannelId      null.String `json:"channel_id"`
	QueueId        null.String `json:"queue_id"`
	Status         string      `json:"status"`
	AssignedUserId null.String `json:"assigned_user_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	LastMessageAt  null.Time   `json:"last_message_at"`
	ClosedAt       null.Time   `json:"closed_at"`
	Contact        *APIContact `json:"contact,omitempty"`
	Tags           []APITag    `json:"tags"`
}

func AdaptConversationDto(conversation models.Conversation) APIConversation {
	dto := APIConversation{
		Id:             conversation.Id,
		WorkspaceId:    conversation.WorkspaceId,
		ContactId:      conversation.ContactId,
		ChannelId:      null.StringFromPtr(conversation.ChannelId),
		QueueId:        null.StringFromPtr(conversation.QueueId),
		Status:         string(conversation.Status),
		AssignedUserId: userIdFromPtr(conversation.AssignedUserId),
		CreatedAt:      conversation.CreatedAt,
		UpdatedAt:      conversation.UpdatedAt,
		LastMessageAt:  null.TimeFromPtr(conversation.LastMessageAt),
		ClosedAt:       null.TimeFromPtr(conversation.ClosedAt),
		Tags:           pure_utils.Map(conversation.Tags, AdaptTagDto),
	}
	if conversation.Contact != nil {
		contact := AdaptContactDto(*conversation.Contact)
		dto.Contact = &contact
	}
	return dto
}

func userIdFromPtr(userId *models.UserId) null.String {
	if userId == nil {
		return null.String{}
	}
	return null.StringFrom(string(*userId))
}

// AcceptConversationResponse always comes back with HTTP 200: losing the
// assignment race is reported through the payload, not through a status code.
type AcceptConversationResponse struct {
	Success         bool             `json:"success"`
	AlreadyAssigned bool             `json:"already_assigned,omitempty"`
	AssignedUserId  null.String      `json:"assigned_user_id"`
	Conversation    *APIConversation `json:"conversation,omitempty"`
}

func AdaptAcceptConversationResponse(result models.AcceptConversationResult,
	conversation *models.Conversation,
) AcceptConversationResponse {
	response := AcceptConversationResponse{
		Success:         result.Accepted,
		AlreadyAssigned: result.AlreadyAssigned,
		AssignedUserId:  userIdFromPtr(result.AssignedUserId),
	}
	if conversation != nil {
		dto := AdaptConversationDto(*conversation)
		response.Conversation = &dto
	}
	return response
}

type EndConversationResponse struct {
	Success       bool `json:"success"`
	AlreadyClosed bool `json:"already_closed,omitempty"`
}

func AdaptEndConversationResponse(result models.EndConversationResult) EndConversationResponse {
	return EndConversationResponse{
		Success:       result.Ended,
		AlreadyClosed: result.AlreadyClosed,
	}
}
