package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}

type ErrorCode string

const (
	// conversation lifecycle
	ConversationClosed      ErrorCode = "conversation_closed"
	ConversationNotAssigned ErrorCode = "conversation_not_assigned"

	// connections
	ConnectionLimitReached ErrorCode = "connection_limit_reached"
	QueueHasConversations  ErrorCode = "queue_has_conversations"

	// general
	UnknownUser ErrorCode = "unknown_user"
)
