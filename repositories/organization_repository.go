package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) GetOrganizationById(ctx context.Context, exec Executor,
	organizationId string,
) (models.Organization, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Organization{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOrganizationColumn...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			Where(squirrel.Eq{"id": organizationId}),
		dbmodels.AdaptOrganization,
	)
}

// ListOrganizations returns every organization together with its member,
// channel and contact counts, computed store side.
func (repo *ZapdeskDbRepository) ListOrganizations(ctx context.Context, exec Executor) ([]models.OrganizationSummary, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(columnsNames("o", dbmodels.SelectOrganizationColumn)...).
		Column("(SELECT count(*) FROM " + dbmodels.TABLE_USERS +
			" AS u WHERE u.organization_id = o.id AND u.deleted_at IS NULL) AS members_count").
		Column("(SELECT count(*) FROM " + dbmodels.TABLE_CHANNELS + " AS ch JOIN " +
			dbmodels.TABLE_WORKSPACES + " AS w ON ch.workspace_id = w.id WHERE w.org_id = o.id) AS channels_count").
		Column("(SELECT count(*) FROM " + dbmodels.TABLE_CONTACTS + " AS co JOIN " +
			dbmodels.TABLE_WORKSPACES + " AS w ON co.workspace_id = w.id WHERE w.org_id = o.id) AS contacts_count").
		From(dbmodels.TABLE_ORGANIZATIONS + " AS o").
		OrderBy("o.created_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrganizationSummary)
}

func (repo *ZapdeskDbRepository) CreateOrganization(ctx context.Context, exec Executor,
	newOrganizationId string, name string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ORGANIZATIONS).
			Columns("id", "name").
			Values(newOrganizationId, name),
	)
	return err
}

func columnsNames(tablename string, fields []string) []string {
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = fmt.Sprintf("%s.%s", tablename, field)
	}
	return columns
}
