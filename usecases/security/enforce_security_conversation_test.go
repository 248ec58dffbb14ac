package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
)

func newConversationSecurity(role models.Role, userId models.UserId) *EnforceSecurityConversationImpl {
	creds := models.Credentials{
		ActorIdentity:  models.Identity{UserId: userId},
		OrganizationId: "org-id",
		Role:           role,
	}
	return &EnforceSecurityConversationImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestEnforceSecurityConversation_EndConversation(t *testing.T) {
	assignee := models.UserId("user-1")
	other := models.UserId("user-2")

	conversation := models.Conversation{
		Id:             "conv-1",
		Status:         models.ConversationActive,
		AssignedUserId: pure_utils.Ptr(assignee),
	}

	t.Run("assignee can end their own conversation", func(t *testing.T) {
		sec := newConversationSecurity(models.AGENT, assignee)
		assert.NoError(t, sec.EndConversation(conversation))
	})

	t.Run("another agent cannot end it", func(t *testing.T) {
		sec := newConversationSecurity(models.AGENT, other)
		err := sec.EndConversation(conversation)
		assert.ErrorIs(t, err, models.ForbiddenError)
	})

	t.Run("a supervisor can end any conversation", func(t *testing.T) {
		sec := newConversationSecurity(models.SUPERVISOR, other)
		assert.NoError(t, sec.EndConversation(conversation))
	})
}

func TestEnforceSecurityConversation_AcceptConversation(t *testing.T) {
	conversation := models.Conversation{Id: "conv-1", Status: models.ConversationPending}

	t.Run("agents can accept", func(t *testing.T) {
		sec := newConversationSecurity(models.AGENT, "user-1")
		assert.NoError(t, sec.AcceptConversation(conversation))
	})

	t.Run("api clients cannot accept", func(t *testing.T) {
		sec := newConversationSecurity(models.API_CLIENT, "")
		assert.ErrorIs(t, sec.AcceptConversation(conversation), models.ForbiddenError)
	})
}
