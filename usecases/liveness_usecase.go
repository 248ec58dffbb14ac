package usecases

import (
	"context"

	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      livenessRepository
}

func (usecase *LivenessUsecase) Liveness(ctx context.Context) error {
	return usecase.repository.Liveness(ctx, usecase.executorFactory.NewExecutor())
}
