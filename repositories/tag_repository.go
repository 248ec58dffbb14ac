package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/dbmodels"
)

func (repo *ZapdeskDbRepository) ListTags(ctx context.Context, exec Executor,
	workspaceId string,
) ([]models.Tag, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTagColumn...).
			From(dbmodels.TABLE_TAGS).
			Where(squirrel.Eq{"workspace_id": workspaceId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptTag,
	)
}

func (repo *ZapdeskDbRepository) GetTagById(ctx context.Context, exec Executor, tagId string) (models.Tag, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Tag{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTagColumn...).
			From(dbmodels.TABLE_TAGS).
			Where(squirrel.Eq{"id": tagId}),
		dbmodels.AdaptTag,
	)
}

func (repo *ZapdeskDbRepository) CreateTag(ctx context.Context, exec Executor,
	newTagId string, input models.CreateTagInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_TAGS).
			Columns("id", "workspace_id", "name", "color").
			Values(newTagId, input.WorkspaceId, input.Name, input.Color),
	)
	return err
}

func (repo *ZapdeskDbRepository) UpdateTag(ctx context.Context, exec Executor,
	input models.UpdateTagInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_TAGS).
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

func (repo *ZapdeskDbRepository) DeleteTag(ctx context.Context, exec Executor, tagId string) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_TAGS).
			Where(squirrel.Eq{"id": tagId}),
	)
	return err
}

func (repo *ZapdeskDbRepository) AttachTagToContact(ctx context.Context, exec Executor,
	newContactTagId string, contactId string, tagId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONTACT_TAGS).
			Columns("id", "contact_id", "tag_id").
			Values(newContactTagId, contactId, tagId),
	)
	return err
}

func (repo *ZapdeskDbRepository) DetachTagFromContact(ctx context.Context, exec Executor,
	contactId string, tagId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_CONTACT_TAGS).
			Where(squirrel.Eq{"contact_id": contactId}).
			Where(squirrel.Eq{"tag_id": tagId}),
	)
	return err
}

// ListTagsOfContacts returns the tags of several contacts in one query, keyed
// by contact id, to hydrate conversation listings.
func (repo *ZapdeskDbRepository) ListTagsOfContacts(ctx context.Context, exec Executor,
	contactIds []string,
) (map[string][]models.Tag, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}
	if len(contactIds) == 0 {
		return map[string][]models.Tag{}, nil
	}

	query := NewQueryBuilder().
		Select(columnsNames("t", dbmodels.SelectTagColumn)...).
		Column("ct.contact_id AS tagged_contact_id").
		From(dbmodels.TABLE_TAGS + " AS t").
		Join(dbmodels.TABLE_CONTACT_TAGS + " AS ct ON ct.tag_id = t.id").
		Where(squirrel.Eq{"ct.contact_id": contactIds}).
		OrderBy("t.created_at ASC")

	rows, err := SqlToListOfModels(ctx, exec, query,
		func(db dbmodels.DBTagOfContact) (dbmodels.DBTagOfContact, error) {
			return db, nil
		})
	if err != nil {
		return nil, err
	}

	out := make(map[string][]models.Tag, len(contactIds))
	for _, row := range rows {
		tag, err := dbmodels.AdaptTag(row.DBTag)
		if err != nil {
			return nil, err
		}
		out[row.ContactId] = append(out[row.ContactId], tag)
	}
	return out, nil
}
