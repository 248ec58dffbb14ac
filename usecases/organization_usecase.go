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

type OrganizationUsecaseRepository interface {
	GetOrganizationById(ctx context.Context, exec repositories.Executor,
		organizationId string) (models.Organization, error)
	ListOrganizations(ctx context.Context, exec repositories.Executor) ([]models.OrganizationSummary, error)
	CreateOrganization(ctx context.Context, exec repositories.Executor,
		newOrganizationId string, name string) error
}

type OrganizationUsecase struct {
	enforceSecurity    security.EnforceSecurityOrganization
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         OrganizationUsecaseRepository
}

func (usecase *OrganizationUsecase) ListOrganizations(ctx context.Context) ([]models.OrganizationSummary, error) {
	if err := usecase.enforceSecurity.ListOrganizations(); err != nil {
		return nil, err
	}
	return usecase.repository.ListOrganizations(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *OrganizationUsecase) CreateOrganization(ctx context.Context,
	input models.CreateOrganizationInput,
) (models.Organization, error) {
	if err := usecase.enforceSecurity.CreateOrganization(); err != nil {
		return models.Organization{}, err
	}
	if input.Name == "" {
		return models.Organization{}, errors.Wrap(models.BadParameterError,
			"organization name is required")
	}

	organization, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Organization, error) {
			newOrganizationId := utils.NewPrimaryKey()
			if err := usecase.repository.CreateOrganization(ctx, tx, newOrganizationId, input.Name); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Organization{}, errors.Wrap(models.ConflictError,
						"an organization with this name already exists")
				}
				return models.Organization{}, err
			}
			return usecase.repository.GetOrganizationById(ctx, tx, newOrganizationId)
		})
	if err != nil {
		return models.Organization{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsOrganizationCreated, map[string]interface{}{
		"organization_id": organization.Id,
	})
	return organization, nil
}
