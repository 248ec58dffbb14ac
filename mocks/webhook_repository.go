package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
)

type InboundWebhookRepository struct {
	mock.Mock
}

func (r *InboundWebhookRepository) GetInstanceToken(ctx context.Context, exec repositories.Executor,
	instanceName string,
) (*models.InstanceToken, error) {
	args := r.Called(exec, instanceName)
	token, _ := args.Get(0).(*models.InstanceToken)
	return token, args.Error(1)
}

func (r *InboundWebhookRepository) GetConnectionByInstanceName(ctx context.Context, exec repositories.Executor,
	instanceName string,
) (models.Connection, error) {
	args := r.Called(exec, instanceName)
	return args.Get(0).(models.Connection), args.Error(1)
}

func (r *InboundWebhookRepository) UpdateConnectionStatus(ctx context.Context, exec repositories.Executor,
	connectionId string, status models.ConnectionStatus, phoneNumber *string,
) error {
	args := r.Called(exec, connectionId, status, phoneNumber)
	return args.Error(0)
}

func (r *InboundWebhookRepository) ContactByPhoneNumber(ctx context.Context, exec repositories.Executor,
	workspaceId string, phoneNumber string,
) (*models.Contact, error) {
	args := r.Called(exec, workspaceId, phoneNumber)
	contact, _ := args.Get(0).(*models.Contact)
	return contact, args.Error(1)
}

func (r *InboundWebhookRepository) CreateContact(ctx context.Context, exec repositories.Executor,
	newContactId string, input models.CreateContactInput,
) error {
	args := r.Called(exec, newContactId, input)
	return args.Error(0)
}

func (r *InboundWebhookRepository) FindOpenConversationByContact(ctx context.Context, exec repositories.Executor,
	workspaceId string, contactId string,
) (*models.Conversation, error) {
	args := r.Called(exec, workspaceId, contactId)
	conversation, _ := args.Get(0).(*models.Conversation)
	return conversation, args.Error(1)
}

func (r *InboundWebhookRepository) CreateConversation(ctx context.Context, exec repositories.Executor,
	newConversationId string, input models.CreateConversationInput,
) error {
	args := r.Called(exec, newConversationId, input)
	return args.Error(0)
}

func (r *InboundWebhookRepository) MessageByGatewayId(ctx context.Context, exec repositories.Executor,
	workspaceId string, gatewayMessageId string,
) (*models.Message, error) {
	args := r.Called(exec, workspaceId, gatewayMessageId)
	message, _ := args.Get(0).(*models.Message)
	return message, args.Error(1)
}

func (r *InboundWebhookRepository) CreateMessage(ctx context.Context, exec repositories.Executor,
	newMessageId string, input models.CreateMessageInput,
) error {
	args := r.Called(exec, newMessageId, input)
	return args.Error(0)
}

func (r *InboundWebhookRepository) TouchConversationLastMessageAt(ctx context.Context, exec repositories.Executor,
	conversationId string,
) error {
	args := r.Called(exec, conversationId)
	return args.Error(0)
}

func (r *InboundWebhookRepository) GetMessagingSettings(ctx context.Context, exec repositories.Executor,
	workspaceId string,
) (*models.MessagingSettings, error) {
	args := r.Called(exec, workspaceId)
	settings, _ := args.Get(0).(*models.MessagingSettings)
	return settings, args.Error(1)
}
