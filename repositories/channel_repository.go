package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) ListChannels(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.Channel, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectChannelColumn...).
			From(dbmodels.TABLE_CHANNELS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptChannel,
	)
}

func (repo *ZapdeskDbRepository) CreateChannel(ctx context.Context, exec Executor,
	newChannelId string, workspaceId string, name string, channelType models.ChannelType,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CHANNELS).
			Columns("id", "workspace_id", "name", "type").
			Values(newChannelId, workspaceId, name, string(channelType)),
	)
	return err
}

func (repo *ZapdeskDbRepository) ListConnections(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.Connection, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectConnectionColumn...).
			From(dbmodels.TABLE_CONNECTIONS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptConnection,
	)
}

func (repo *ZapdeskDbRepository) GetConnectionByInstanceName(ctx context.Context, exec Executor,
	instanceName string,
) (models.Connection, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Connection{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectConnectionColumn...).
			From(dbmodels.TABLE_CONNECTIONS).
			Where(squirrel.Eq{"instance_name": instanceName}),
		dbmodels.AdaptConnection,
	)
}

func (repo *ZapdeskDbRepository) CreateConnection(ctx context.Context, exec Executor,
	newConnectionId string, input models.CreateConnectionInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONNECTIONS).
			Columns("id", "workspace_id", "channel_id", "instance_name", "status").
			Values(
				newConnectionId,
				input.WorkspaceId,
				input.ChannelId,
				input.InstanceName,
				string(models.ConnectionConnecting),
			),
	)
	return err
}

func (repo *ZapdeskDbRepository) UpdateConnectionStatus(ctx context.Context, exec Executor,
	connectionId string, status models.ConnectionStatus, phoneNumber *string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CONNECTIONS).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": connectionId})

	if phoneNumber != nil {
		query = query.Set("phone_number", *phoneNumber)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *ZapdeskDbRepository) CountConnections(ctx context.Context, exec Executor,
	workspaceId string,
) (int, error) {
	if err := validateDbExecutor(exec); err != nil {
		return 0, err
	}

	query := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_CONNECTIONS).
		Where(squirrel.Eq{"workspace_id": workspaceId})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
