package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) UserById(ctx context.Context, exec Executor, userId models.UserId) (models.User, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.User{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": string(userId)}).
			Where(squirrel.Eq{"deleted_at": nil}),
		dbmodels.AdaptUser,
	)
}

func (repo *ZapdeskDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email}).
			Where(squirrel.Eq{"deleted_at": nil}).
			OrderBy("created_at DESC").
			Limit(1),
		dbmodels.AdaptUser,
	)
}

func (repo *ZapdeskDbRepository) CreateUser(ctx context.Context, exec Executor,
	newUserId string, createUser models.CreateUser,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"email",
				"role",
				"organization_id",
				"first_name",
				"last_name",
			).
			Values(
				newUserId,
				createUser.Email,
				createUser.Role.String(),
				createUser.OrganizationId,
				createUser.FirstName,
				createUser.LastName,
			),
	)
	return err
}

// ListWorkspaceUsers returns the users who are members of the workspace.
func (repo *ZapdeskDbRepository) ListWorkspaceUsers(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.User, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(columnsNames("u", dbmodels.SelectUserColumn)...).
		From(dbmodels.TABLE_USERS + " AS u").
		Join(dbmodels.TABLE_WORKSPACE_MEMBERS + " AS wm ON wm.user_id = u.id").
		Where(squirrel.Eq{"wm.workspace_id": workspaceId}).
		Where(squirrel.Eq{"u.deleted_at": nil}).
		OrderBy("u.created_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}
