package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) GetWorkspaceById(ctx context.Context, exec Executor,
	workspaceId string,
) (models.Workspace, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Workspace{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkspaceColumn...).
			From(dbmodels.TABLE_WORKSPACES).
			Where(squirrel.Eq{"id": workspaceId}),
		dbmodels.AdaptWorkspace,
	)
}

func (repo *ZapdeskDbRepository) ListWorkspacesOfOrganization(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.Workspace, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkspaceColumn...).
			From(dbmodels.TABLE_WORKSPACES).
			Where(squirrel.Eq{"org_id": organizationId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptWorkspace,
	)
}

// ListWorkspacesOfUser restricts the organization's workspaces to the ones the
// user is a member of.
func (repo *ZapdeskDbRepository) ListWorkspacesOfUser(ctx context.Context, exec Executor,
	organizationId string, userId models.UserId,
) ([]models.Workspace, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(columnsNames("w", dbmodels.SelectWorkspaceColumn)...).
		From(dbmodels.TABLE_WORKSPACES + " AS w").
		Join(dbmodels.TABLE_WORKSPACE_MEMBERS + " AS wm ON wm.workspace_id = w.id").
		Where(squirrel.Eq{"w.org_id": organizationId}).
		Where(squirrel.Eq{"wm.user_id": string(userId)}).
		OrderBy("w.created_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptWorkspace)
}

func (repo *ZapdeskDbRepository) CreateWorkspace(ctx context.Context, exec Executor,
	newWorkspaceId string, input models.CreateWorkspaceInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_WORKSPACES).
			Columns("id", "org_id", "name").
			Values(newWorkspaceId, input.OrganizationId, input.Name),
	)
	return err
}

func (repo *ZapdeskDbRepository) UpdateWorkspace(ctx context.Context, exec Executor,
	input models.UpdateWorkspaceInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_WORKSPACES).
		Where(squirrel.Eq{"id": input.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.PrimaryColor != nil {
		query = query.Set("primary_color", *input.PrimaryColor)
	}
	if input.LogoUrl != nil {
		query = query.Set("logo_url", *input.LogoUrl)
	}
	if input.BannerUrl != nil {
		query = query.Set("banner_url", *input.BannerUrl)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *ZapdeskDbRepository) IsWorkspaceMember(ctx context.Context, exec Executor,
	workspaceId string, userId models.UserId,
) (bool, error) {
	if err := validateDbExecutor(exec); err != nil {
		return false, err
	}

	query := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_WORKSPACE_MEMBERS).
		Where(squirrel.Eq{"workspace_id": workspaceId}).
		Where(squirrel.Eq{"user_id": string(userId)})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ZapdeskDbRepository) AddWorkspaceMember(ctx context.Context, exec Executor,
	newMemberId string, workspaceId string, userId models.UserId, role models.WorkspaceMemberRole,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_WORKSPACE_MEMBERS).
			Columns("id", "workspace_id", "user_id", "role").
			Values(newMemberId, workspaceId, string(userId), string(role)),
	)
	return err
}

func (repo *ZapdeskDbRepository) ListWorkspaceMembers(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.WorkspaceMember, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectWorkspaceMemberColumn...).
			From(dbmodels.TABLE_WORKSPACE_MEMBERS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptWorkspaceMember,
	)
}
