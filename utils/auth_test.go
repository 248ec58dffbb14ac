package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapdesk/zapdesk-backend/models"
)

func TestParseAuthorizationBearerHeader(t *testing.T) {
	header := http.Header{}
	token, err := ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, "", token)

	header.Set("Authorization", "Bearer some-token")
	token, err = ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, "some-token", token)

	header.Set("Authorization", "some-token")
	_, err = ParseAuthorizationBearerHeader(header)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestValidateIdentityHeaders(t *testing.T) {
	creds := models.Credentials{
		ActorIdentity: models.Identity{
			UserId: "11111111-1111-1111-1111-111111111111",
			Email:  "agent@acme.test",
		},
	}

	header := http.Header{}
	assert.NoError(t, ValidateIdentityHeaders(header, creds))

	header.Set(HeaderSystemUserId, "11111111-1111-1111-1111-111111111111")
	header.Set(HeaderSystemUserEmail, "Agent@acme.test")
	assert.NoError(t, ValidateIdentityHeaders(header, creds))

	header.Set(HeaderSystemUserId, "22222222-2222-2222-2222-222222222222")
	err := ValidateIdentityHeaders(header, creds)
	assert.ErrorIs(t, err, models.UnAuthorizedError)

	header.Set(HeaderSystemUserId, "11111111-1111-1111-1111-111111111111")
	header.Set(HeaderSystemUserEmail, "other@acme.test")
	err = ValidateIdentityHeaders(header, creds)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestEnforceOrganizationAccess(t *testing.T) {
	creds := models.Credentials{OrganizationId: "org-1", Role: models.ADMIN}

	assert.NoError(t, EnforceOrganizationAccess(creds, "org-1"))
	assert.ErrorIs(t, EnforceOrganizationAccess(creds, "org-2"), models.ForbiddenError)

	platformAdmin := models.Credentials{Role: models.PLATFORM_ADMIN}
	assert.NoError(t, EnforceOrganizationAccess(platformAdmin, "org-2"))
}
