package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) GetMessagingSettings(ctx context.Context, exec Executor,
	workspaceId string,
) (*models.MessagingSettings, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectMessagingSettingsColumn...).
			From(dbmodels.TABLE_MESSAGING_SETTINGS).
			Where(squirrel.Eq{"workspace_id": workspaceId}),
		dbmodels.AdaptMessagingSettings,
	)
}

// UpsertMessagingSettings writes the workspace gateway override row. There is
// at most one row per workspace.
func (repo *ZapdeskDbRepository) UpsertMessagingSettings(ctx context.Context, exec Executor,
	newSettingsId string, input models.SaveMessagingSettingsInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MESSAGING_SETTINGS).
			Columns("id", "workspace_id", "base_url", "api_key").
			Values(newSettingsId, input.WorkspaceId, input.BaseUrl, input.ApiKey).
			Suffix(`ON CONFLICT (workspace_id) DO UPDATE
				SET base_url = EXCLUDED.base_url,
					api_key = EXCLUDED.api_key,
					updated_at = NOW()`),
	)
	return err
}

func (repo *ZapdeskDbRepository) SetDefaultInstance(ctx context.Context, exec Executor,
	newSettingsId string, workspaceId string, instanceName string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MESSAGING_SETTINGS).
			Columns("id", "workspace_id", "default_instance").
			Values(newSettingsId, workspaceId, instanceName).
			Suffix(`ON CONFLICT (workspace_id) DO UPDATE
				SET default_instance = EXCLUDED.default_instance,
					updated_at = NOW()`),
	)
	return err
}

func (repo *ZapdeskDbRepository) GetInstanceToken(ctx context.Context, exec Executor,
	instanceName string,
) (*models.InstanceToken, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstanceTokenColumn...).
			From(dbmodels.TABLE_INSTANCE_TOKENS).
			Where(squirrel.Eq{"instance_name": instanceName}),
		dbmodels.AdaptInstanceToken,
	)
}

func (repo *ZapdeskDbRepository) UpsertInstanceToken(ctx context.Context, exec Executor,
	newTokenId string, workspaceId string, instanceName string, token string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_INSTANCE_TOKENS).
			Columns("id", "workspace_id", "instance_name", "token").
			Values(newTokenId, workspaceId, instanceName, token).
			Suffix(`ON CONFLICT (instance_name) DO UPDATE
				SET token = EXCLUDED.token`),
	)
	return err
}
