package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) GetApiKeyByHash(ctx context.Context, exec Executor,
	hash []byte,
) (models.ApiKey, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.ApiKey{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectApiKeyColumn...).
			From(dbmodels.TABLE_API_KEYS).
			Where(squirrel.Eq{"key_hash": hash}),
		dbmodels.AdaptApiKey,
	)
}
