package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type ConversationUsecaseRepository interface {
	GetConversationById(ctx context.Context, exec repositories.Executor,
		conversationId string) (models.Conversation, error)
	ListConversations(ctx context.Context, exec repositories.Executor,
		filters models.ConversationFilters) ([]models.Conversation, error)
	AssignConversation(ctx context.Context, exec repositories.Executor,
		conversationId string, workspaceId string, userId models.UserId) (bool, error)
	CloseConversation(ctx context.Context, exec repositories.Executor,
		conversationId string, workspaceId string) (bool, error)
	ListTagsOfContacts(ctx context.Context, exec repositories.Executor,
		contactIds []string) (map[string][]models.Tag, error)
	ListActivitiesOfConversation(ctx context.Context, exec repositories.Executor,
		conversationId string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, exec repositories.Executor,
		newActivityId string, input models.CreateActivityInput) error
}

type ConversationUsecase struct {
	enforceSecurity    security.EnforceSecurityConversation
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ConversationUsecaseRepository
	credentials        models.Credentials
}

func (usecase *ConversationUsecase) getInWorkspace(ctx context.Context, exec repositories.Executor,
	workspaceId, conversationId string,
) (models.Conversation, error) {
	conversation, err := usecase.repository.GetConversationById(ctx, exec, conversationId)
	if err != nil {
		return models.Conversation{}, err
	}
	if conversation.WorkspaceId != workspaceId {
		return models.Conversation{}, errors.Wrap(models.NotFoundError,
			"conversation does not belong to this workspace")
	}
	return conversation, nil
}

func (usecase *ConversationUsecase) GetConversation(ctx context.Context,
	workspaceId, conversationId string,
) (models.Conversation, error) {
	exec := usecase.executorFactory.NewExecutor()
	conversation, err := usecase.getInWorkspace(ctx, exec, workspaceId, conversationId)
	if err != nil {
		return models.Conversation{}, err
	}
	if err := usecase.enforceSecurity.ReadConversation(conversation); err != nil {
		return models.Conversation{}, err
	}

	tags, err := usecase.repository.ListTagsOfContacts(ctx, exec, []string{conversation.ContactId})
	if err != nil {
		return models.Conversation{}, err
	}
	conversation.Tags = tags[conversation.ContactId]
	return conversation, nil
}

func (usecase *ConversationUsecase) ListConversations(ctx context.Context,
	filters models.ConversationFilters,
) ([]models.Conversation, error) {
	if err := usecase.enforceSecurity.ReadConversation(models.Conversation{}); err != nil {
		return nil, err
	}

	exec := usecase.executorFactory.NewExecutor()
	conversations, err := usecase.repository.ListConversations(ctx, exec, filters)
	if err != nil {
		return nil, err
	}

	contactIds := make([]string, 0, len(conversations))
	for _, conversation := range conversations {
		contactIds = append(contactIds, conversation.ContactId)
	}
	if len(contactIds) == 0 {
		return conversations, nil
	}

	tagsByContact, err := usecase.repository.ListTagsOfContacts(ctx, exec, contactIds)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		conversations[i].Tags = tagsByContact[conversations[i].ContactId]
	}
	return conversations, nil
}

// AcceptConversation assigns the conversation to the calling user through a
// conditional update. Losing the race against another agent is a normal
// outcome reported as AlreadyAssigned, not an error.
func (usecase *ConversationUsecase) AcceptConversation(ctx context.Context,
	workspaceId, conversationId string,
) (models.AcceptConversationResult, error) {
	userId := usecase.credentials.ActorIdentity.UserId
	if userId == "" {
		return models.AcceptConversationResult{}, errors.Wrap(models.UnAuthorizedError,
			"only users can accept conversations")
	}

	conversation, err := usecase.getInWorkspace(ctx,
		usecase.executorFactory.NewExecutor(), workspaceId, conversationId)
	if err != nil {
		return models.AcceptConversationResult{}, err
	}
	if err := usecase.enforceSecurity.AcceptConversation(conversation); err != nil {
		return models.AcceptConversationResult{}, err
	}

	result, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AcceptConversationResult, error) {
			assigned, err := usecase.repository.AssignConversation(ctx, tx,
				conversationId, workspaceId, userId)
			if err != nil {
				return models.AcceptConversationResult{}, err
			}

			if !assigned {
				current, err := usecase.repository.GetConversationById(ctx, tx, conversationId)
				if err != nil {
					return models.AcceptConversationResult{}, err
				}
				if current.Status == models.ConversationClosed {
					return models.AcceptConversationResult{}, errors.Wrap(
						models.ErrConversationClosed, "cannot accept a closed conversation")
				}
				return models.AcceptConversationResult{
					AlreadyAssigned: true,
					AssignedUserId:  current.AssignedUserId,
				}, nil
			}

			err = usecase.repository.CreateActivity(ctx, tx, utils.NewPrimaryKey(),
				models.CreateActivityInput{
					WorkspaceId:    workspaceId,
					UserId:         &userId,
					Type:           models.ActivityConversationAccepted,
					ConversationId: &conversationId,
				})
			if err != nil {
				return models.AcceptConversationResult{}, err
			}
			return models.AcceptConversationResult{
				Accepted:       true,
				AssignedUserId: &userId,
			}, nil
		})
	if err != nil {
		return models.AcceptConversationResult{}, err
	}

	if result.Accepted {
		tracking.TrackEvent(ctx, models.AnalyticsConversationAccepted, map[string]interface{}{
			"conversation_id": conversationId,
		})
	}
	return result, nil
}

// EndConversation closes the conversation. Only the assignee or a supervisor
// may close it, and an unassigned conversation cannot be ended. Ending twice
// is idempotent.
func (usecase *ConversationUsecase) EndConversation(ctx context.Context,
	workspaceId, conversationId string,
) (models.EndConversationResult, error) {
	conversation, err := usecase.getInWorkspace(ctx,
		usecase.executorFactory.NewExecutor(), workspaceId, conversationId)
	if err != nil {
		return models.EndConversationResult{}, err
	}

	if conversation.Status == models.ConversationClosed {
		return models.EndConversationResult{AlreadyClosed: true, Ended: true}, nil
	}
	if !conversation.IsAssigned() {
		return models.EndConversationResult{}, errors.Wrap(models.ErrConversationNotAssigned,
			"cannot end an unassigned conversation")
	}
	if err := usecase.enforceSecurity.EndConversation(conversation); err != nil {
		return models.EndConversationResult{}, err
	}

	result, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.EndConversationResult, error) {
			closed, err := usecase.repository.CloseConversation(ctx, tx, conversationId, workspaceId)
			if err != nil {
				return models.EndConversationResult{}, err
			}
			if !closed {
				// Another caller closed it between the read and the update.
				return models.EndConversationResult{AlreadyClosed: true, Ended: true}, nil
			}

			userId := usecase.credentials.ActorIdentity.UserId
			err = usecase.repository.CreateActivity(ctx, tx, utils.NewPrimaryKey(),
				models.CreateActivityInput{
					WorkspaceId:    workspaceId,
					UserId:         &userId,
					Type:           models.ActivityConversationEnded,
					ConversationId: &conversationId,
				})
			if err != nil {
				return models.EndConversationResult{}, err
			}
			return models.EndConversationResult{Ended: true}, nil
		})
	if err != nil {
		return models.EndConversationResult{}, err
	}

	if !result.AlreadyClosed {
		tracking.TrackEvent(ctx, models.AnalyticsConversationEnded, map[string]interface{}{
			"conversation_id": conversationId,
		})
	}
	return result, nil
}

func (usecase *ConversationUsecase) ListActivities(ctx context.Context,
	workspaceId, conversationId string,
) ([]models.Activity, error) {
	exec := usecase.executorFactory.NewExecutor()
	conversation, err := usecase.getInWorkspace(ctx, exec, workspaceId, conversationId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceSecurity.ReadConversation(conversation); err != nil {
		return nil, err
	}
	return usecase.repository.ListActivitiesOfConversation(ctx, exec, conversationId)
}
