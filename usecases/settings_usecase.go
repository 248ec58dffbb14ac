package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type SettingsUsecaseRepository interface {
	GetMessagingSettings(ctx context.Context, exec repositories.Executor,
		workspaceId string) (*models.MessagingSettings, error)
	UpsertMessagingSettings(ctx context.Context, exec repositories.Executor,
		newSettingsId string, input models.SaveMessagingSettingsInput) error
	SetDefaultInstance(ctx context.Context, exec repositories.Executor,
		newSettingsId string, workspaceId string, instanceName string) error
	ListConnections(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Connection, error)
	GetConnectionByInstanceName(ctx context.Context, exec repositories.Executor,
		instanceName string) (models.Connection, error)
}

type SettingsUsecase struct {
	enforceSecurity    security.EnforceSecuritySettings
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         SettingsUsecaseRepository
	evolutionConfig    infra.EvolutionConfiguration
}

// GetEvolutionConfig resolves the gateway target of a workspace, falling back
// to the env-level defaults when the workspace has no override.
func (usecase *SettingsUsecase) GetEvolutionConfig(ctx context.Context,
	workspaceId string,
) (models.EvolutionConfig, error) {
	if err := usecase.enforceSecurity.ReadMessagingSettings(); err != nil {
		return models.EvolutionConfig{}, err
	}

	settings, err := usecase.repository.GetMessagingSettings(ctx,
		usecase.executorFactory.NewExecutor(), workspaceId)
	if err != nil {
		return models.EvolutionConfig{}, err
	}
	return resolveGatewayConfig(settings, usecase.evolutionConfig)
}

func (usecase *SettingsUsecase) SaveEvolutionConfig(ctx context.Context,
	input models.SaveMessagingSettingsInput,
) error {
	if err := usecase.enforceSecurity.EditMessagingSettings(); err != nil {
		return err
	}
	if input.BaseUrl == nil || *input.BaseUrl == "" {
		return errors.Wrap(models.BadParameterError, "evolution url is required")
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return usecase.repository.UpsertMessagingSettings(ctx, tx, utils.NewPrimaryKey(), input)
	})
}

func (usecase *SettingsUsecase) GetDefaultInstance(ctx context.Context,
	workspaceId string,
) (*string, error) {
	if err := usecase.enforceSecurity.ReadMessagingSettings(); err != nil {
		return nil, err
	}

	settings, err := usecase.repository.GetMessagingSettings(ctx,
		usecase.executorFactory.NewExecutor(), workspaceId)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}
	return settings.DefaultInstance, nil
}

// SetDefaultInstance records which gateway instance outbound traffic should
// use. The instance must be a registered connection of the workspace.
func (usecase *SettingsUsecase) SetDefaultInstance(ctx context.Context,
	workspaceId string, instanceName string,
) error {
	if err := usecase.enforceSecurity.EditMessagingSettings(); err != nil {
		return err
	}
	if instanceName == "" {
		return errors.Wrap(models.BadParameterError, "instance name is required")
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		connection, err := usecase.repository.GetConnectionByInstanceName(ctx, tx, instanceName)
		if err != nil {
			return err
		}
		if connection.WorkspaceId != workspaceId {
			return errors.Wrap(models.NotFoundError,
				"instance does not belong to this workspace")
		}
		return usecase.repository.SetDefaultInstance(ctx, tx,
			utils.NewPrimaryKey(), workspaceId, instanceName)
	})
}
