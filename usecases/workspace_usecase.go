package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
	"github.com/zapdesk/zapdesk-backend/usecases/tracking"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type WorkspaceUsecaseRepository interface {
	GetWorkspaceById(ctx context.Context, exec repositories.Executor,
		workspaceId string) (models.Workspace, error)
	ListWorkspacesOfOrganization(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.Workspace, error)
	ListWorkspacesOfUser(ctx context.Context, exec repositories.Executor,
		organizationId string, userId models.UserId) ([]models.Workspace, error)
	CreateWorkspace(ctx context.Context, exec repositories.Executor,
		newWorkspaceId string, input models.CreateWorkspaceInput) error
	UpdateWorkspace(ctx context.Context, exec repositories.Executor,
		input models.UpdateWorkspaceInput) error
	IsWorkspaceMember(ctx context.Context, exec repositories.Executor,
		workspaceId string, userId models.UserId) (bool, error)
	AddWorkspaceMember(ctx context.Context, exec repositories.Executor,
		newMemberId string, workspaceId string, userId models.UserId,
		role models.WorkspaceMemberRole) error
	ListWorkspaceMembers(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.WorkspaceMember, error)
	ListWorkspaceUsers(ctx context.Context, exec repositories.Executor,
		workspaceId string) ([]models.User, error)
}

type WorkspaceUsecase struct {
	enforceSecurity    security.EnforceSecurityWorkspace
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         WorkspaceUsecaseRepository
	connectionLimit    int
	credentials        models.Credentials
}

// ListWorkspaces returns the workspaces the caller may select: all workspaces
// of the organization for admins, only the memberships for everyone else.
func (usecase *WorkspaceUsecase) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	exec := usecase.executorFactory.NewExecutor()
	organizationId := usecase.credentials.OrganizationId

	if usecase.credentials.Role == models.ADMIN ||
		usecase.credentials.Role == models.PLATFORM_ADMIN {
		return usecase.repository.ListWorkspacesOfOrganization(ctx, exec, organizationId)
	}
	return usecase.repository.ListWorkspacesOfUser(ctx, exec, organizationId,
		usecase.credentials.ActorIdentity.UserId)
}

func (usecase *WorkspaceUsecase) GetWorkspace(ctx context.Context, workspaceId string) (models.Workspace, error) {
	exec := usecase.executorFactory.NewExecutor()
	workspace, err := usecase.repository.GetWorkspaceById(ctx, exec, workspaceId)
	if err != nil {
		return models.Workspace{}, err
	}
	if err := usecase.enforceSecurity.ReadWorkspace(workspace); err != nil {
		return models.Workspace{}, err
	}
	return workspace, nil
}

// ValidateWorkspaceAccess is the per-request scope check behind the
// x-workspace-id header: the workspace must belong to the caller's
// organization and non-admins must be members.
func (usecase *WorkspaceUsecase) ValidateWorkspaceAccess(ctx context.Context, workspaceId string) error {
	exec := usecase.executorFactory.NewExecutor()

	workspace, err := usecase.repository.GetWorkspaceById(ctx, exec, workspaceId)
	if err != nil {
		return err
	}
	if err := usecase.enforceSecurity.ReadWorkspace(workspace); err != nil {
		return err
	}

	switch usecase.credentials.Role {
	case models.ADMIN, models.PLATFORM_ADMIN, models.API_CLIENT:
		return nil
	}

	isMember, err := usecase.repository.IsWorkspaceMember(ctx, exec, workspaceId,
		usecase.credentials.ActorIdentity.UserId)
	if err != nil {
		return err
	}
	if !isMember {
		return errors.Wrap(models.ForbiddenError,
			"user is not a member of this workspace")
	}
	return nil
}

func (usecase *WorkspaceUsecase) CreateWorkspace(ctx context.Context,
	input models.CreateWorkspaceInput,
) (models.Workspace, error) {
	if err := usecase.enforceSecurity.CreateWorkspace(input.OrganizationId); err != nil {
		return models.Workspace{}, err
	}
	if input.Name == "" {
		return models.Workspace{}, errors.Wrap(models.BadParameterError,
			"workspace name is required")
	}

	workspace, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Workspace, error) {
			newWorkspaceId := utils.NewPrimaryKey()
			if err := usecase.repository.CreateWorkspace(ctx, tx, newWorkspaceId, input); err != nil {
				return models.Workspace{}, err
			}
			return usecase.repository.GetWorkspaceById(ctx, tx, newWorkspaceId)
		})
	if err != nil {
		return models.Workspace{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsWorkspaceCreated, map[string]interface{}{
		"workspace_id": workspace.Id,
	})
	return workspace, nil
}

func (usecase *WorkspaceUsecase) UpdateWorkspace(ctx context.Context,
	input models.UpdateWorkspaceInput,
) (models.Workspace, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Workspace, error) {
			workspace, err := usecase.repository.GetWorkspaceById(ctx, tx, input.Id)
			if err != nil {
				return models.Workspace{}, err
			}
			if err := usecase.enforceSecurity.UpdateWorkspace(workspace); err != nil {
				return models.Workspace{}, err
			}
			if err := usecase.repository.UpdateWorkspace(ctx, tx, input); err != nil {
				return models.Workspace{}, err
			}
			return usecase.repository.GetWorkspaceById(ctx, tx, input.Id)
		})
}

func (usecase *WorkspaceUsecase) ListWorkspaceUsers(ctx context.Context,
	workspaceId string,
) ([]models.User, error) {
	exec := usecase.executorFactory.NewExecutor()
	workspace, err := usecase.repository.GetWorkspaceById(ctx, exec, workspaceId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceSecurity.ListWorkspaceMembers(workspace); err != nil {
		return nil, err
	}
	return usecase.repository.ListWorkspaceUsers(ctx, exec, workspaceId)
}

func (usecase *WorkspaceUsecase) AddWorkspaceMember(ctx context.Context,
	workspaceId string, userId models.UserId, role models.WorkspaceMemberRole,
) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		workspace, err := usecase.repository.GetWorkspaceById(ctx, tx, workspaceId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateWorkspace(workspace); err != nil {
			return err
		}
		err = usecase.repository.AddWorkspaceMember(ctx, tx, utils.NewPrimaryKey(),
			workspaceId, userId, role)
		if repositories.IsUniqueViolationError(err) {
			return errors.Wrap(models.ConflictError,
				"user is already a member of this workspace")
		}
		return err
	})
}

// GetWorkspaceLimits returns the connection cap of a workspace. The limit is
// deployment-wide configuration for now, kept behind a workspace-scoped call
// so per-workspace plans can land without an API change.
func (usecase *WorkspaceUsecase) GetWorkspaceLimits(ctx context.Context,
	workspaceId string,
) (models.WorkspaceLimits, error) {
	exec := usecase.executorFactory.NewExecutor()
	workspace, err := usecase.repository.GetWorkspaceById(ctx, exec, workspaceId)
	if err != nil {
		return models.WorkspaceLimits{}, err
	}
	if err := usecase.enforceSecurity.ReadWorkspace(workspace); err != nil {
		return models.WorkspaceLimits{}, err
	}

	limit := usecase.connectionLimit
	if limit <= 0 {
		limit = models.DefaultConnectionLimit
	}
	return models.WorkspaceLimits{
		WorkspaceId:     workspaceId,
		ConnectionLimit: limit,
	}, nil
}
