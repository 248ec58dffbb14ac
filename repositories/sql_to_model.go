package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

func SqlToListOfModels[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	return SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zero Model
			return zero, err
		}
		return adapter(dbModel)
	})
}

// SqlToOptionalModel returns nil when the query matches no row.
func SqlToOptionalModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	models, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	return &models[0], nil
}

// SqlToModel returns a NotFoundError when the query matches no row.
func SqlToModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	var zero Model
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	if err != nil {
		return zero, err
	}
	if model == nil {
		return zero, errors.WithStack(models.NotFoundError)
	}
	return *model, nil
}

func SqlToListOfRow[Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(row pgx.CollectableRow) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}

	out, err := pgx.CollectRows(rows, adapter)
	if err != nil {
		return nil, errors.Wrap(err, "error collecting rows")
	}
	return out, nil
}

func SqlToOptionalRow[Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(row pgx.CollectableRow) (Model, error),
) (*Model, error) {
	rows, err := SqlToListOfRow(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func SqlToRow[Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(row pgx.CollectableRow) (Model, error),
) (Model, error) {
	var zero Model
	row, err := SqlToOptionalRow(ctx, exec, query, adapter)
	if err != nil {
		return zero, err
	}
	if row == nil {
		return zero, errors.WithStack(models.NotFoundError)
	}
	return *row, nil
}

// ExecBuilder executes a squirrel statement and returns the number of rows
// affected.
func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing sql query")
	}
	return tag.RowsAffected(), nil
}
