package usecases

import (
	"context"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
)

type DashboardUsecaseRepository interface {
	GetDashboardStats(ctx context.Context, exec repositories.Executor,
		workspaceId string) (models.DashboardStats, error)
}

type DashboardUsecase struct {
	enforceSecurity security.EnforceSecuritySettings
	executorFactory executor_factory.ExecutorFactory
	repository      DashboardUsecaseRepository
}

// GetStats returns the workspace counters. The aggregation runs store-side in
// one query instead of loading the rows and counting here.
func (usecase *DashboardUsecase) GetStats(ctx context.Context,
	workspaceId string,
) (models.DashboardStats, error) {
	if err := usecase.enforceSecurity.ReadDashboard(); err != nil {
		return models.DashboardStats{}, err
	}
	return usecase.repository.GetDashboardStats(ctx,
		usecase.executorFactory.NewExecutor(), workspaceId)
}
