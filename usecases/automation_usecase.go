package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
)

type AutomationUsecaseRepository interface {
	GetConversationById(ctx context.Context, exec repositories.Executor,
		conversationId string) (models.Conversation, error)
	GetMessagingSettings(ctx context.Context, exec repositories.Executor,
		workspaceId string) (*models.MessagingSettings, error)
}

type chatAutomationRepository interface {
	TriggerChatAutomation(ctx context.Context,
		request models.ChatAutomationRequest) (models.ChatAutomationResponse, error)
}

type AutomationUsecase struct {
	enforceSecurity security.EnforceSecuritySettings
	executorFactory executor_factory.ExecutorFactory
	repository      AutomationUsecaseRepository
	automation      chatAutomationRepository
}

// GetChatResponse forwards an inbound message to the workflow engine and
// returns the generated reply. Automation must be enabled on the workspace.
func (usecase *AutomationUsecase) GetChatResponse(ctx context.Context,
	workspaceId string, request models.ChatAutomationRequest,
) (models.ChatAutomationResponse, error) {
	if err := usecase.enforceSecurity.TriggerAutomation(); err != nil {
		return models.ChatAutomationResponse{}, err
	}
	if request.Message == "" || request.ConversationId == "" {
		return models.ChatAutomationResponse{}, errors.Wrap(models.BadParameterError,
			"message and conversationId are required")
	}

	exec := usecase.executorFactory.NewExecutor()

	conversation, err := usecase.repository.GetConversationById(ctx, exec, request.ConversationId)
	if err != nil {
		return models.ChatAutomationResponse{}, err
	}
	if conversation.WorkspaceId != workspaceId {
		return models.ChatAutomationResponse{}, errors.Wrap(models.NotFoundError,
			"conversation does not belong to this workspace")
	}

	settings, err := usecase.repository.GetMessagingSettings(ctx, exec, workspaceId)
	if err != nil {
		return models.ChatAutomationResponse{}, err
	}
	if settings == nil || !settings.AiEnabled {
		return models.ChatAutomationResponse{Active: false}, nil
	}

	request.WorkspaceId = workspaceId
	response, err := usecase.automation.TriggerChatAutomation(ctx, request)
	if err != nil {
		return models.ChatAutomationResponse{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsAutomationTriggered, map[string]interface{}{
		"conversation_id": request.ConversationId,
	})
	return response, nil
}
