package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) ListQueues(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.Queue, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectQueueColumn...).
			From(dbmodels.TABLE_QUEUES).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptQueue,
	)
}

func (repo *ZapdeskDbRepository) GetQueueById(ctx context.Context, exec Executor,
	queueId string,
) (models.Queue, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Queue{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectQueueColumn...).
			From(dbmodels.TABLE_QUEUES).
			Where(squirrel.Eq{"id": queueId}),
		dbmodels.AdaptQueue,
	)
}

func (repo *ZapdeskDbRepository) CreateQueue(ctx context.Context, exec Executor,
	newQueueId string, input models.CreateQueueInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_QUEUES).
			Columns("id", "workspace_id", "name", "color").
			Values(newQueueId, input.WorkspaceId, input.Name, input.Color),
	)
	return err
}

func (repo *ZapdeskDbRepository) UpdateQueue(ctx context.Context, exec Executor,
	input models.UpdateQueueInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_QUEUES).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Color != nil {
		query = query.Set("color", *input.Color)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *ZapdeskDbRepository) DeleteQueue(ctx context.Context, exec Executor, queueId string) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_QUEUES).
			Where(squirrel.Eq{"id": queueId}),
	)
	return err
}
