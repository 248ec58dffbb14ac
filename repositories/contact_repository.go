package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) GetContactById(ctx context.Context, exec Executor,
	contactId string,
) (models.Contact, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Contact{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectContactColumn...).
			From(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"id": contactId}),
		dbmodels.AdaptContact,
	)
}

func (repo *ZapdeskDbRepository) ContactByPhoneNumber(ctx context.Context, exec Executor,
	workspaceId string, phoneNumber string,
) (*models.Contact, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectContactColumn...).
			From(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			Where(squirrel.Eq{"phone_number": phoneNumber}).
			Limit(1),
		dbmodels.AdaptContact,
	)
}

func (repo *ZapdeskDbRepository) CreateContact(ctx context.Context, exec Executor,
	newContactId string, input models.CreateContactInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONTACTS).
			Columns("id", "workspace_id", "phone_number", "name").
			Values(newContactId, input.WorkspaceId, input.PhoneNumber, input.Name),
	)
	return err
}
