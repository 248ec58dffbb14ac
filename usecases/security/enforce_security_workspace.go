package security

import (
	"errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EnforceSecurityWorkspace interface {
	EnforceSecurity
	ReadWorkspace(workspace models.Workspace) error
	CreateWorkspace(organizationId string) error
	UpdateWorkspace(workspace models.Workspace) error
	ListWorkspaceMembers(workspace models.Workspace) error
}

type EnforceSecurityWorkspaceImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityWorkspaceImpl) ReadWorkspace(workspace models.Workspace) error {
	return errors.Join(
		e.Permission(models.WORKSPACE_READ),
		e.ReadOrganization(workspace.OrganizationId),
	)
}

func (e *EnforceSecurityWorkspaceImpl) CreateWorkspace(organizationId string) error {
	return errors.Join(
		e.Permission(models.WORKSPACE_EDIT),
		e.ReadOrganization(organizationId),
	)
}

func (e *EnforceSecurityWorkspaceImpl) UpdateWorkspace(workspace models.Workspace) error {
	return errors.Join(
		e.Permission(models.WORKSPACE_EDIT),
		e.ReadOrganization(workspace.OrganizationId),
	)
}

func (e *EnforceSecurityWorkspaceImpl) ListWorkspaceMembers(workspace models.Workspace) error {
	return errors.Join(
		e.Permission(models.WORKSPACE_MEMBERS_READ),
		e.ReadOrganization(workspace.OrganizationId),
	)
}
