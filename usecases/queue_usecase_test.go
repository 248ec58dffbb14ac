package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapdesk/zapdesk-backend/mocks"
	"github.com/zapdesk/zapdesk-backend/models"
)

func TestQueueUsecase_DeleteQueue(t *testing.T) {
	workspaceId := "4e5cd2b4-97c1-4c2f-8e87-21b5ae4f2b61"
	queueId := "a2a37e62-7d26-45b3-b04e-5ae50b87be5d"
	queue := models.Queue{Id: queueId, WorkspaceId: workspaceId, Name: "support"}

	makeUsecase := func(repository *mocks.QueueRepository,
		enforceSecurity *mocks.EnforceSecurity, tx *mocks.Transaction,
	) *QueueUsecase {
		return &QueueUsecase{
			enforceSecurity:    enforceSecurity,
			executorFactory:    mocks.ExecutorFactory{},
			transactionFactory: &mocks.TransactionFactory{TxMock: tx},
			repository:         repository,
		}
	}

	t.Run("nominal", func(t *testing.T) {
		enforceSecurity := new(mocks.EnforceSecurity)
		repository := new(mocks.QueueRepository)
		tx := new(mocks.Transaction)

		enforceSecurity.On("EditQueue").Return(nil)
		repository.On("GetQueueById", tx, queueId).Return(queue, nil)
		repository.On("CountConversationsInQueue", tx, queueId).Return(0, nil)
		repository.On("DeleteQueue", tx, queueId).Return(nil)

		err := makeUsecase(repository, enforceSecurity, tx).
			DeleteQueue(context.Background(), workspaceId, queueId)

		assert.NoError(t, err)
		repository.AssertExpectations(t)
	})

	t.Run("queue still has conversations", func(t *testing.T) {
		enforceSecurity := new(mocks.EnforceSecurity)
		repository := new(mocks.QueueRepository)
		tx := new(mocks.Transaction)

		enforceSecurity.On("EditQueue").Return(nil)
		repository.On("GetQueueById", tx, queueId).Return(queue, nil)
		repository.On("CountConversationsInQueue", tx, queueId).Return(3, nil)

		err := makeUsecase(repository, enforceSecurity, tx).
			DeleteQueue(context.Background(), workspaceId, queueId)

		assert.ErrorIs(t, err, models.ErrQueueHasConversations)
		repository.AssertNotCalled(t, "DeleteQueue", tx, queueId)
	})

	t.Run("queue of another workspace", func(t *testing.T) {
		enforceSecurity := new(mocks.EnforceSecurity)
		repository := new(mocks.QueueRepository)
		tx := new(mocks.Transaction)

		enforceSecurity.On("EditQueue").Return(nil)
		repository.On("GetQueueById", tx, queueId).Return(queue, nil)

		err := makeUsecase(repository, enforceSecurity, tx).
			DeleteQueue(context.Background(), "another-workspace", queueId)

		assert.ErrorIs(t, err, models.NotFoundError)
	})
}
