package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
)

type QueueRepository struct {
	mock.Mock
}

func (r *QueueRepository) ListQueues(ctx context.Context, exec repositories.Executor,
	workspaceId string,
) ([]models.Queue, error) {
	args := r.Called(exec, workspaceId)
	return args.Get(0).([]models.Queue), args.Error(1)
}

func (r *QueueRepository) GetQueueById(ctx context.Context, exec repositories.Executor,
	queueId string,
) (models.Queue, error) {
	args := r.Called(exec, queueId)
	return args.Get(0).(models.Queue), args.Error(1)
}

func (r *QueueRepository) CreateQueue(ctx context.Context, exec repositories.Executor,
	newQueueId string, input models.CreateQueueInput,
) error {
	args := r.Called(exec, newQueueId, input)
	return args.Error(0)
}

func (r *QueueRepository) UpdateQueue(ctx context.Context, exec repositories.Executor,
	input models.UpdateQueueInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}

func (r *QueueRepository) DeleteQueue(ctx context.Context, exec repositories.Executor, queueId string) error {
	args := r.Called(exec, queueId)
	return args.Error(0)
}

func (r *QueueRepository) CountConversationsInQueue(ctx context.Context, exec repositories.Executor,
	queueId string,
) (int, error) {
	args := r.Called(exec, queueId)
	return args.Int(0), args.Error(1)
}
