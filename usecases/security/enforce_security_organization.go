package security

import (
	"errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EnforceSecurityOrganization interface {
	EnforceSecurity
	ListOrganizations() error
	CreateOrganization() error
}

type EnforceSecurityOrganizationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityOrganizationImpl) ListOrganizations() error {
	return errors.Join(
		e.Permission(models.ORGANIZATION_LIST),
	)
}

func (e *EnforceSecurityOrganizationImpl) CreateOrganization() error {
	return errors.Join(
		e.Permission(models.ORGANIZATION_CREATE),
	)
}
