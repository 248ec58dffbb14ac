package models

import "time"

type ConversationStatus string

const (
	// ConversationPending: created by an inbound message, waiting in a queue,
	// assigned_user_id is null.
	ConversationPending ConversationStatus = "pending"
	// ConversationActive: accepted by a user, assigned_user_id is set.
	ConversationActive ConversationStatus = "active"
	// ConversationClosed is terminal.
	ConversationClosed ConversationStatus = "closed"
)

// Conversation invariant: AssignedUserId == nil <=> the conversation is
// unassigned (pending). A non-nil value means assigned to exactly that user.
type Conversation struct {
	Id             string
	WorkspaceId    string
	ContactId      string
	ChannelId      *string
	QueueId        *string
	Status         ConversationStatus
	AssignedUserId *UserId
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastMessageAt  *time.Time
	ClosedAt       *time.Time

	Contact *Contact
	Tags    []Tag
}

func (c Conversation) IsAssigned() bool {
	return c.AssignedUserId != nil
}

type ConversationFilters struct {
	WorkspaceId    string
	Status         *ConversationStatus
	QueueId        *string
	AssignedUserId *UserId
}

// AcceptConversationResult reports the outcome of the atomic conditional
// assignment. Exactly one of several racing callers observes Accepted; the
// rest observe AlreadyAssigned with the winner's id, which is a signal to
// refresh, not an error.
type AcceptConversationResult struct {
	Accepted        bool
	AlreadyAssigned bool
	AssignedUserId  *UserId
}

// EndConversationResult reports the outcome of closing a conversation. Ending
// twice is idempotent: the second call reports AlreadyClosed.
type EndConversationResult struct {
	Ended         bool
	AlreadyClosed bool
}

type CreateConversationInput struct {
	WorkspaceId string
	ContactId   string
	ChannelId   *string
	QueueId     *string
}
