package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type ChannelUsecaseRepository interface {
	ListChannels(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Channel, error)
	CreateChannel(ctx context.Context, exec repositories.Executor,
		newChannelId string, workspaceId string, name string, channelType models.ChannelType) error
	ListConnections(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Connection, error)
	CreateConnection(ctx context.Context, exec repositories.Executor,
		newConnectionId string, input models.CreateConnectionInput) error
	CountConnections(ctx context.Context, exec repositories.Executor,
		workspaceId string) (int, error)
	GetMessagingSettings(ctx context.Context, exec repositories.Executor,
		workspaceId string) (*models.MessagingSettings, error)
	GetInstanceToken(ctx context.Context, exec repositories.Executor,
		instanceName string) (*models.InstanceToken, error)
	UpsertInstanceToken(ctx context.Context, exec repositories.Executor,
		newTokenId string, workspaceId string, instanceName string, token string) error
	CreateActivity(ctx context.Context, exec repositories.Executor,
		newActivityId string, input models.CreateActivityInput) error
}

type channelGatewayRepository interface {
	SetWebhook(ctx context.Context, config models.EvolutionConfig,
		setup models.WebhookSetup) error
	GetWebhookConfig(ctx context.Context, config models.EvolutionConfig,
		instanceName string) (string, []string, error)
	GetInstanceState(ctx context.Context, config models.EvolutionConfig,
		instanceName string) (models.ConnectionStatus, error)
}

type ChannelUsecase struct {
	enforceSecurity    security.EnforceSecurityWorkspaceAdmin
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ChannelUsecaseRepository
	gatewayRepository  channelGatewayRepository
	evolutionConfig    infra.EvolutionConfiguration
	connectionLimit    int
}

func (usecase *ChannelUsecase) ListChannels(ctx context.Context, workspaceId string) ([]models.Channel, error) {
	if err := usecase.enforceSecurity.ReadChannel(); err != nil {
		return nil, err
	}
	return usecase.repository.ListChannels(ctx, usecase.executorFactory.NewExecutor(), workspaceId)
}

func (usecase *ChannelUsecase) ListConnections(ctx context.Context, workspaceId string) ([]models.Connection, error) {
	if err := usecase.enforceSecurity.ReadChannel(); err != nil {
		return nil, err
	}
	return usecase.repository.ListConnections(ctx, usecase.executorFactory.NewExecutor(), workspaceId)
}

// CreateConnection registers a gateway instance for the workspace, enforcing
// the workspace connection limit inside the transaction.
func (usecase *ChannelUsecase) CreateConnection(ctx context.Context,
	input models.CreateConnectionInput,
) (models.Connection, error) {
	if err := usecase.enforceSecurity.CreateConnection(); err != nil {
		return models.Connection{}, err
	}
	if input.InstanceName == "" {
		return models.Connection{}, errors.Wrap(models.BadParameterError,
			"instance name is required")
	}

	limit := usecase.connectionLimit
	if limit <= 0 {
		limit = models.DefaultConnectionLimit
	}

	connection, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Connection, error) {
			count, err := usecase.repository.CountConnections(ctx, tx, input.WorkspaceId)
			if err != nil {
				return models.Connection{}, err
			}
			if count >= limit {
				return models.Connection{}, errors.WithDetail(models.ErrConnectionLimitReached,
					fmt.Sprintf("the workspace already has %d connections", count))
			}

			newConnectionId := utils.NewPrimaryKey()
			if err := usecase.repository.CreateConnection(ctx, tx, newConnectionId, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Connection{}, errors.Wrap(models.ConflictError,
						"a connection with this instance name already exists")
				}
				return models.Connection{}, err
			}

			err = usecase.repository.CreateActivity(ctx, tx, utils.NewPrimaryKey(),
				models.CreateActivityInput{
					WorkspaceId: input.WorkspaceId,
					Type:        models.ActivityConnectionCreated,
					Details:     map[string]any{"instance_name": input.InstanceName},
				})
			if err != nil {
				return models.Connection{}, err
			}

			return models.Connection{
				Id:           newConnectionId,
				WorkspaceId:  input.WorkspaceId,
				ChannelId:    input.ChannelId,
				InstanceName: input.InstanceName,
				Status:       models.ConnectionConnecting,
			}, nil
		})
	if err != nil {
		return models.Connection{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsConnectionCreated, map[string]interface{}{
		"connection_id": connection.Id,
	})
	return connection, nil
}

func (usecase *ChannelUsecase) webhookUrlFor(instanceName, token string) string {
	return fmt.Sprintf("%s/webhooks/evolution/%s?token=%s",
		usecase.evolutionConfig.WebhookCallbackBaseUrl, instanceName, token)
}

// FixWebhook points the workspace's gateway instance back at this backend,
// minting the per-instance token when none exists yet.
func (usecase *ChannelUsecase) FixWebhook(ctx context.Context,
	workspaceId string,
) (models.WebhookSetup, error) {
	if err := usecase.enforceSecurity.ConfigureWebhook(); err != nil {
		return models.WebhookSetup{}, err
	}
	if usecase.evolutionConfig.WebhookCallbackBaseUrl == "" {
		return models.WebhookSetup{}, errors.Wrap(models.BadParameterError,
			"no webhook callback base url configured")
	}

	exec := usecase.executorFactory.NewExecutor()
	settings, err := usecase.repository.GetMessagingSettings(ctx, exec, workspaceId)
	if err != nil {
		return models.WebhookSetup{}, err
	}
	gatewayConfig, err := resolveGatewayConfig(settings, usecase.evolutionConfig)
	if err != nil {
		return models.WebhookSetup{}, err
	}
	connections, err := usecase.repository.ListConnections(ctx, exec, workspaceId)
	if err != nil {
		return models.WebhookSetup{}, err
	}
	instanceName, err := resolveInstanceName(settings, connections)
	if err != nil {
		return models.WebhookSetup{}, err
	}

	token, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (string, error) {
			existing, err := usecase.repository.GetInstanceToken(ctx, tx, instanceName)
			if err != nil {
				return "", err
			}
			if existing != nil {
				return existing.Token, nil
			}
			token := utils.NewPrimaryKey()
			err = usecase.repository.UpsertInstanceToken(ctx, tx, utils.NewPrimaryKey(),
				workspaceId, instanceName, token)
			return token, err
		})
	if err != nil {
		return models.WebhookSetup{}, err
	}

	setup := models.WebhookSetup{
		InstanceName: instanceName,
		Url:          usecase.webhookUrlFor(instanceName, token),
		Events:       models.GatewayWebhookEvents,
	}
	if err := usecase.gatewayRepository.SetWebhook(ctx, gatewayConfig, setup); err != nil {
		return models.WebhookSetup{}, err
	}

	err = usecase.repository.CreateActivity(ctx, exec, utils.NewPrimaryKey(),
		models.CreateActivityInput{
			WorkspaceId: workspaceId,
			Type:        models.ActivityWebhookFixed,
			Details:     map[string]any{"instance_name": instanceName},
		})
	if err != nil {
		return models.WebhookSetup{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsWebhookFixed, map[string]interface{}{
		"workspace_id": workspaceId,
	})
	return setup, nil
}

// TestWebhook reads the webhook configuration back from the gateway and
// reports whether it targets this backend.
func (usecase *ChannelUsecase) TestWebhook(ctx context.Context,
	workspaceId string,
) (models.WebhookCheckResult, error) {
	if err := usecase.enforceSecurity.ConfigureWebhook(); err != nil {
		return models.WebhookCheckResult{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	settings, err := usecase.repository.GetMessagingSettings(ctx, exec, workspaceId)
	if err != nil {
		return models.WebhookCheckResult{}, err
	}
	gatewayConfig, err := resolveGatewayConfig(settings, usecase.evolutionConfig)
	if err != nil {
		return models.WebhookCheckResult{}, err
	}
	connections, err := usecase.repository.ListConnections(ctx, exec, workspaceId)
	if err != nil {
		return models.WebhookCheckResult{}, err
	}
	instanceName, err := resolveInstanceName(settings, connections)
	if err != nil {
		return models.WebhookCheckResult{}, err
	}

	url, _, err := usecase.gatewayRepository.GetWebhookConfig(ctx, gatewayConfig, instanceName)
	if err != nil {
		return models.WebhookCheckResult{
			InstanceName: instanceName,
			Reachable:    false,
			Detail:       err.Error(),
		}, nil
	}

	return models.WebhookCheckResult{
		InstanceName: instanceName,
		Url:          url,
		Reachable:    url != "",
		StatusCode:   200,
	}, nil
}
