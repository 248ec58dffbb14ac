package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type TagUsecaseRepository interface {
	ListTags(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.Tag, error)
	GetTagById(ctx context.Context, exec repositories.Executor, tagId string) (models.Tag, error)
	CreateTag(ctx context.Context, exec repositories.Executor,
		newTagId string, input models.CreateTagInput) error
	UpdateTag(ctx context.Context, exec repositories.Executor,
		input models.UpdateTagInput) error
	DeleteTag(ctx context.Context, exec repositories.Executor, tagId string) error
	AttachTagToContact(ctx context.Context, exec repositories.Executor,
		newContactTagId string, contactId string, tagId string) error
	DetachTagFromContact(ctx context.Context, exec repositories.Executor,
		contactId string, tagId string) error
	GetContactById(ctx context.Context, exec repositories.Executor,
		contactId string) (models.Contact, error)
}

type TagUsecase struct {
	enforceSecurity    security.EnforceSecurityWorkspaceAdmin
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         TagUsecaseRepository
}

func (usecase *TagUsecase) ListTags(ctx context.Context, workspaceId string) ([]models.Tag, error) {
	if err := usecase.enforceSecurity.ReadTag(); err != nil {
		return nil, err
	}
	return usecase.repository.ListTags(ctx, usecase.executorFactory.NewExecutor(), workspaceId)
}

func (usecase *TagUsecase) CreateTag(ctx context.Context, input models.CreateTagInput) (models.Tag, error) {
	if err := usecase.enforceSecurity.EditTag(); err != nil {
		return models.Tag{}, err
	}
	if input.Name == "" {
		return models.Tag{}, errors.Wrap(models.BadParameterError, "tag name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Tag, error) {
			newTagId := utils.NewPrimaryKey()
			if err := usecase.repository.CreateTag(ctx, tx, newTagId, input); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Tag{}, errors.Wrap(models.ConflictError,
						"a tag with this name already exists")
				}
				return models.Tag{}, err
			}
			return usecase.repository.GetTagById(ctx, tx, newTagId)
		})
}

func (usecase *TagUsecase) UpdateTag(ctx context.Context,
	workspaceId string, input models.UpdateTagInput,
) (models.Tag, error) {
	if err := usecase.enforceSecurity.EditTag(); err != nil {
		return models.Tag{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Tag, error) {
			tag, err := usecase.repository.GetTagById(ctx, tx, input.Id)
			if err != nil {
				return models.Tag{}, err
			}
			if tag.WorkspaceId != workspaceId {
				return models.Tag{}, errors.Wrap(models.NotFoundError,
					"tag does not belong to this workspace")
			}
			if err := usecase.repository.UpdateTag(ctx, tx, input); err != nil {
				return models.Tag{}, err
			}
			return usecase.repository.GetTagById(ctx, tx, input.Id)
		})
}

func (usecase *TagUsecase) DeleteTag(ctx context.Context, workspaceId, tagId string) error {
	if err := usecase.enforceSecurity.EditTag(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		tag, err := usecase.repository.GetTagById(ctx, tx, tagId)
		if err != nil {
			return err
		}
		if tag.WorkspaceId != workspaceId {
			return errors.Wrap(models.NotFoundError, "tag does not belong to this workspace")
		}
		return usecase.repository.DeleteTag(ctx, tx, tagId)
	})
}

func (usecase *TagUsecase) AttachTagToContact(ctx context.Context,
	workspaceId, contactId, tagId string,
) error {
	if err := usecase.enforceSecurity.EditTag(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		contact, err := usecase.repository.GetContactById(ctx, tx, contactId)
		if err != nil {
			return err
		}
		tag, err := usecase.repository.GetTagById(ctx, tx, tagId)
		if err != nil {
			return err
		}
		if contact.WorkspaceId != workspaceId || tag.WorkspaceId != workspaceId {
			return errors.Wrap(models.NotFoundError,
				"contact or tag does not belong to this workspace")
		}

		err = usecase.repository.AttachTagToContact(ctx, tx, utils.NewPrimaryKey(), contactId, tagId)
		if repositories.IsUniqueViolationError(err) {
			return errors.Wrap(models.ConflictError, "the contact already has this tag")
		}
		return err
	})
}

func (usecase *TagUsecase) DetachTagFromContact(ctx context.Context,
	workspaceId, contactId, tagId string,
) error {
	if err := usecase.enforceSecurity.EditTag(); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		contact, err := usecase.repository.GetContactById(ctx, tx, contactId)
		if err != nil {
			return err
		}
		if contact.WorkspaceId != workspaceId {
			return errors.Wrap(models.NotFoundError,
				"contact does not belong to this workspace")
		}
		return usecase.repository.DetachTagFromContact(ctx, tx, contactId, tagId)
	})
}
