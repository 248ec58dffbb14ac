package models

import "time"

type ActivityType string

const (
	ActivityConversationAccepted ActivityType = "conversation_accepted"
	ActivityConversationEnded    ActivityType = "conversation_ended"
	ActivityMessageSent          ActivityType = "message_sent"
	ActivityConnectionCreated    ActivityType = "connection_created"
	ActivityWebhookFixed         ActivityType = "webhook_fixed"
)

// Activity is an append-only audit record of notable workspace events.
type Activity struct {
	Id             string
	WorkspaceId    string
	UserId         *UserId
	Type           ActivityType
	ConversationId *string
	Details        map[string]any
	CreatedAt      time.Time
}

type CreateActivityInput struct {
	WorkspaceId    string
	UserId         *UserId
	Type           ActivityType
	ConversationId *string
	Details        map[string]any
}
