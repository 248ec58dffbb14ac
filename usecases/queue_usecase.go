package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type QueueUsecaseRepository interface {
	ListQueues(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Queue, error)
	GetQueueById(ctx context.Context, exec repositories.Executor,
		queueId string) (models.Queue, error)
	CreateQueue(ctx context.Context, exec repositories.Executor,
		newQueueId string, input models.CreateQueueInput) error
	UpdateQueue(ctx context.Context, exec repositories.Executor,
		input models.UpdateQueueInput) error
	DeleteQueue(ctx context.Context, exec repositories.Executor, queueId string) error
	CountConversationsInQueue(ctx context.Context, exec repositories.Executor,
		queueId string) (int, error)
}

type QueueUsecase struct {
	enforceSecurity    security.EnforceSecurityWorkspaceAdmin
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         QueueUsecaseRepository
}

func (usecase *QueueUsecase) ListQueues(ctx context.Context, workspaceId string) ([]models.Queue, error) {
	if err := usecase.enforceSecurity.ReadQueue(); err != nil {
		return nil, err
	}
	return usecase.repository.ListQueues(ctx, usecase.executorFactory.NewExecutor(), workspaceId)
}

func (usecase *QueueUsecase) CreateQueue(ctx context.Context,
	input models.CreateQueueInput,
) (models.Queue, error) {
	if err := usecase.enforceSecurity.EditQueue(); err != nil {
		return models.Queue{}, err
	}
	if input.Name == "" {
		return models.Queue{}, errors.Wrap(models.BadParameterError, "queue name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Queue, error) {
			newQueueId := utils.NewPrimaryKey()
			if err := usecase.repository.CreateQueue(ctx, tx, newQueueId, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Queue{}, errors.Wrap(models.ConflictError,
						"a queue with this name already exists")
				}
				return models.Queue{}, err
			}
			return usecase.repository.GetQueueById(ctx, tx, newQueueId)
		})
}

func (usecase *QueueUsecase) UpdateQueue(ctx context.Context,
	workspaceId string, input models.UpdateQueueInput,
) (models.Queue, error) {
	if err := usecase.enforceSecurity.EditQueue(); err != nil {
		return models.Queue{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Queue, error) {
			queue, err := usecase.repository.GetQueueById(ctx, tx, input.Id)
			if err != nil {
				return models.Queue{}, err
			}
			if queue.WorkspaceId != workspaceId {
				return models.Queue{}, errors.Wrap(models.NotFoundError,
					"queue does not belong to this workspace")
			}
			if err := usecase.repository.UpdateQueue(ctx, tx, input); err != nil {
				return models.Queue{}, err
			}
			return usecase.repository.GetQueueById(ctx, tx, input.Id)
		})
}

// DeleteQueue refuses to delete a queue that still has conversations attached.
func (usecase *QueueUsecase) DeleteQueue(ctx context.Context, workspaceId, queueId string) error {
	if err := usecase.enforceSecurity.EditQueue(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		queue, err := usecase.repository.GetQueueById(ctx, tx, queueId)
		if err != nil {
			return err
		}
		if queue.WorkspaceId != workspaceId {
			return errors.Wrap(models.NotFoundError,
				"queue does not belong to this workspace")
		}

		count, err := usecase.repository.CountConversationsInQueue(ctx, tx, queueId)
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrQueueHasConversations
		}
		return usecase.repository.DeleteQueue(ctx, tx, queueId)
	})
}
