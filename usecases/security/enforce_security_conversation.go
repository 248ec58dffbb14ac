package security

import (
	"errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EnforceSecurityConversation interface {
	EnforceSecurity
	ReadConversation(conversation models.Conversation) error
	AcceptConversation(conversation models.Conversation) error
	EndConversation(conversation models.Conversation) error
	SendMessage(conversation models.Conversation) error
}

type EnforceSecurityConversationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityConversationImpl) ReadConversation(conversation models.Conversation) error {
	return errors.Join(
		e.Permission(models.CONVERSATION_READ),
	)
}

func (e *EnforceSecurityConversationImpl) AcceptConversation(conversation models.Conversation) error {
	return errors.Join(
		e.Permission(models.CONVERSATION_ACCEPT),
	)
}

// EndConversation lets the assignee close their own conversation; closing
// someone else's requires the supervisor-level permission.
func (e *EnforceSecurityConversationImpl) EndConversation(conversation models.Conversation) error {
	if err := e.Permission(models.CONVERSATION_END); err != nil {
		return err
	}

	isAssignee := conversation.AssignedUserId != nil &&
		*conversation.AssignedUserId == e.Credentials.ActorIdentity.UserId
	if isAssignee {
		return nil
	}
	return errors.Join(
		e.Permission(models.CONVERSATION_END_ANY),
	)
}

func (e *EnforceSecurityConversationImpl) SendMessage(conversation models.Conversation) error {
	return errors.Join(
		e.Permission(models.MESSAGE_SEND),
	)
}
