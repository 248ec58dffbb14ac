package security

import (
	"errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

// EnforceSecurityWorkspaceAdmin covers the administration surface inside a
// workspace: queues, tags, channels and gateway connections.
type EnforceSecurityWorkspaceAdmin interface {
	EnforceSecurity
	ReadQueue() error
	EditQueue() error
	ReadTag() error
	EditTag() error
	ReadChannel() error
	CreateConnection() error
	ConfigureWebhook() error
}

type EnforceSecurityWorkspaceAdminImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityWorkspaceAdminImpl) ReadQueue() error {
	return errors.Join(
		e.Permission(models.QUEUE_READ),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) EditQueue() error {
	return errors.Join(
		e.Permission(models.QUEUE_EDIT),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) ReadTag() error {
	return errors.Join(
		e.Permission(models.TAG_READ),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) EditTag() error {
	return errors.Join(
		e.Permission(models.TAG_EDIT),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) ReadChannel() error {
	return errors.Join(
		e.Permission(models.CHANNEL_READ),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) CreateConnection() error {
	return errors.Join(
		e.Permission(models.WORKSPACE_EDIT),
	)
}

func (e *EnforceSecurityWorkspaceAdminImpl) ConfigureWebhook() error {
	return errors.Join(
		e.Permission(models.WEBHOOK_CONFIGURE),
	)
}
