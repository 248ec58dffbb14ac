package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type MessageUsecaseRepository interface {
	GetConversationById(ctx context.Context, exec repositories.Executor,
		conversationId string) (models.Conversation, error)
	ListMessagesOfConversation(ctx context.Context, exec repositories.Executor,
		conversationId string) ([]models.Message, error)
	CreateMessage(ctx context.Context, exec repositories.Executor,
		newMessageId string, input models.CreateMessageInput) error
	TouchConversationLastMessageAt(ctx context.Context, exec repositories.Executor,
		conversationId string) error
	GetContactById(ctx context.Context, exec repositories.Executor,
		contactId string) (models.Contact, error)
	GetMessagingSettings(ctx context.Context, exec repositories.Executor,
		workspaceId string) (*models.MessagingSettings, error)
	ListConnections(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Connection, error)
}

type messageGatewayRepository interface {
	SendTextMessage(ctx context.Context, config models.EvolutionConfig,
		instanceName string, phoneNumber string, text string) (string, error)
}

type MessageUsecase struct {
	enforceSecurity    security.EnforceSecurityConversation
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         MessageUsecaseRepository
	gatewayRepository  messageGatewayRepository
	evolutionConfig    infra.EvolutionConfiguration
	credentials        models.Credentials
}

func (usecase *MessageUsecase) ListMessages(ctx context.Context,
	workspaceId, conversationId string,
) ([]models.Message, error) {
	exec := usecase.executorFactory.NewExecutor()

	conversation, err := usecase.repository.GetConversationById(ctx, exec, conversationId)
	if err != nil {
		return nil, err
	}
	if conversation.WorkspaceId != workspaceId {
		return nil, errors.Wrap(models.NotFoundError,
			"conversation does not belong to this workspace")
	}
	if err := usecase.enforceSecurity.ReadConversation(conversation); err != nil {
		return nil, err
	}
	return usecase.repository.ListMessagesOfConversation(ctx, exec, conversationId)
}

// SendMessage stores the outbound message and forwards it to the gateway. The
// gateway call happens after the row is committed; a failed forward is
// reported to the caller but the message stays stored for retry by the user.
func (usecase *MessageUsecase) SendMessage(ctx context.Context,
	input models.SendMessageInput,
) (models.Message, error) {
	exec := usecase.executorFactory.NewExecutor()

	conversation, err := usecase.repository.GetConversationById(ctx, exec, input.ConversationId)
	if err != nil {
		return models.Message{}, err
	}
	if conversation.WorkspaceId != input.WorkspaceId {
		return models.Message{}, errors.Wrap(models.NotFoundError,
			"conversation does not belong to this workspace")
	}
	if conversation.Status == models.ConversationClosed {
		return models.Message{}, errors.Wrap(models.ErrConversationClosed,
			"cannot send a message to a closed conversation")
	}
	if err := usecase.enforceSecurity.SendMessage(conversation); err != nil {
		return models.Message{}, err
	}
	if input.Content == "" {
		return models.Message{}, errors.Wrap(models.BadParameterError,
			"message content is required")
	}

	contact, err := usecase.repository.GetContactById(ctx, exec, conversation.ContactId)
	if err != nil {
		return models.Message{}, err
	}

	settings, err := usecase.repository.GetMessagingSettings(ctx, exec, input.WorkspaceId)
	if err != nil {
		return models.Message{}, err
	}
	gatewayConfig, err := resolveGatewayConfig(settings, usecase.evolutionConfig)
	if err != nil {
		return models.Message{}, err
	}
	connections, err := usecase.repository.ListConnections(ctx, exec, input.WorkspaceId)
	if err != nil {
		return models.Message{}, err
	}
	instanceName, err := resolveInstanceName(settings, connections)
	if err != nil {
		return models.Message{}, err
	}

	messageType := input.Type
	if messageType == "" {
		messageType = models.MessageTypeText
	}

	newMessageId := utils.NewPrimaryKey()
	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.CreateMessage(ctx, tx, newMessageId, models.CreateMessageInput{
			ConversationId: input.ConversationId,
			WorkspaceId:    input.WorkspaceId,
			Direction:      models.MessageOutbound,
			Type:           messageType,
			Content:        input.Content,
			SenderUserId:   &input.SenderUserId,
		})
		if err != nil {
			return err
		}
		return usecase.repository.TouchConversationLastMessageAt(ctx, tx, input.ConversationId)
	})
	if err != nil {
		return models.Message{}, err
	}

	_, err = usecase.gatewayRepository.SendTextMessage(ctx, gatewayConfig,
		instanceName, contact.PhoneNumber, input.Content)
	if err != nil {
		return models.Message{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsMessageSent, map[string]interface{}{
		"conversation_id": input.ConversationId,
	})

	return models.Message{
		Id:             newMessageId,
		ConversationId: input.ConversationId,
		WorkspaceId:    input.WorkspaceId,
		Direction:      models.MessageOutbound,
		Type:           messageType,
		Content:        input.Content,
		SenderUserId:   &input.SenderUserId,
	}, nil
}
