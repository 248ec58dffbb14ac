package utils

import (
	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

func EnforceOrganizationAccess(creds models.Credentials, organizationId string) error {
	if creds.Role == models.PLATFORM_ADMIN {
		return nil
	}

	if organizationId == "" {
		return errors.New("Empty organization Id passed to EnforceOrganizationAccess")
	}

	if creds.OrganizationId == "" {
		return errors.Wrap(models.ForbiddenError, "credentials does not grant access to any organization")
	}

	if creds.OrganizationId != organizationId {
		return errors.Wrapf(models.ForbiddenError, "credentials does not grant access to organization %s", organizationId)
	}
	return nil
}
