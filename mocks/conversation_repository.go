package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
)

type ConversationRepository struct {
	mock.Mock
}

func (r *ConversationRepository) GetConversationById(ctx context.Context, exec repositories.Executor,
	conversationId string,
) (models.Conversation, error) {
	args := r.Called(exec, conversationId)
	return args.Get(0).(models.Conversation), args.Error(1)
}

func (r *ConversationRepository) ListConversations(ctx context.Context, exec repositories.Executor,
	filters models.ConversationFilters,
) ([]models.Conversation, error) {
	args := r.Called(exec, filters)
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (r *ConversationRepository) AssignConversation(ctx context.Context, exec repositories.Executor,
	conversationId string, workspaceId string, userId models.UserId,
) (bool, error) {
	args := r.Called(exec, conversationId, workspaceId, userId)
	return args.Bool(0), args.Error(1)
}

func (r *ConversationRepository) CloseConversation(ctx context.Context, exec repositories.Executor,
	conversationId string, workspaceId string,
) (bool, error) {
	args := r.Called(exec, conversationId, workspaceId)
	return args.Bool(0), args.Error(1)
}

func (r *ConversationRepository) ListTagsOfContacts(ctx context.Context, exec repositories.Executor,
	contactIds []string,
) (map[string][]models.Tag, error) {
	args := r.Called(exec, contactIds)
	return args.Get(0).(map[string][]models.Tag), args.Error(1)
}

func (r *ConversationRepository) ListActivitiesOfConversation(ctx context.Context, exec repositories.Executor,
	conversationId string,
) ([]models.Activity, error) {
	args := r.Called(exec, conversationId)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (r *ConversationRepository) CreateActivity(ctx context.Context, exec repositories.Executor,
	newActivityId string, input models.CreateActivityInput,
) error {
	args := r.Called(exec, newActivityId, input)
	return args.Error(0)
}
