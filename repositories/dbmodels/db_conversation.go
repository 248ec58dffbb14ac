package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBConversation struct {
	Id             string     `db:"id"`
	WorkspaceId    string     `db:"workspace_id"`
	ContactId      string     `db:"contact_id"`
	ChannelId      *string    `db:"channel_id"`
	QueueId        *string    `db:"queue_id"`
	Status         string     `db:"status"`
	AssignedUserId *string    `db:"assigned_user_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	LastMessageAt  *time.Time `db:"last_message_at"`
	ClosedAt       *time.Time `db:"closed_at"`
}

const TABLE_CONVERSATIONS = "conversations"

var SelectConversationColumn = utils.ColumnList[DBConversation]()

func AdaptConversation(db DBConversation) (models.Conversation, error) {
	conversation := models.Conversation{
		Id:            db.Id,
		WorkspaceId:   db.WorkspaceId,
		ContactId:     db.ContactId,
		ChannelId:     db.ChannelId,
		QueueId:       db.QueueId,
		Status:        models.ConversationStatus(db.Status),
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
		LastMessageAt: db.LastMessageAt,
		ClosedAt:      db.ClosedAt,
	}
	if db.AssignedUserId != nil {
		userId := models.UserId(*db.AssignedUserId)
		conversation.AssignedUserId = &userId
	}
	return conversation, nil
}

type DBConversationWithContact struct {
	DBConversation
	ContactPhoneNumber string  `db:"contact_phone_number"`
	ContactName        string  `db:"contact_name"`
	ContactAvatarUrl   *string `db:"contact_avatar_url"`
}

func AdaptConversationWithContact(db DBConversationWithContact) (models.Conversation, error) {
	conversation, err := AdaptConversation(db.DBConversation)
	if err != nil {
		return models.Conversation{}, err
	}
	conversation.Contact = &models.Contact{
		Id:          db.ContactId,
		WorkspaceId: db.WorkspaceId,
		PhoneNumber: db.ContactPhoneNumber,
		Name:        db.ContactName,
		AvatarUrl:   db.ContactAvatarUrl,
	}
	return conversation, nil
}
