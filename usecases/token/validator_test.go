package token

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"

	"github.com/zapdesk/zapdesk-backend/mocks"
	"github.com/zapdesk/zapdesk-backend/models"
)

func newTestValidator(getter *mocks.Database, tokens *mocks.AccessTokenValidator) *Validator {
	return &Validator{
		executorFactory:  mocks.ExecutorFactory{},
		getter:           getter,
		users:            getter,
		tokens:           tokens,
		credentialsCache: expirable.NewLRU[string, models.Credentials](100, nil, time.Microsecond),
	}
}

func TestValidator_Validate_ApiKey(t *testing.T) {
	key := "api_key"
	hash := sha256.Sum256([]byte(key))

	apiKey := models.ApiKey{
		Id:             "api_key_id",
		OrganizationId: "organization_id",
		Role:           models.API_CLIENT,
	}
	organization := models.Organization{
		Id:   "organization_id",
		Name: "organization",
	}

	t.Run("nominal", func(t *testing.T) {
		getter := new(mocks.Database)
		getter.On("GetApiKeyByHash", nil, hash[:]).Return(apiKey, nil)
		getter.On("GetOrganizationById", nil, apiKey.OrganizationId).
			Return(organization, nil)

		credentials, err := newTestValidator(getter, nil).Validate(context.Background(), "", key)

		assert.NoError(t, err)
		assert.Equal(t, models.Credentials{
			ActorIdentity:  models.Identity{ApiKeyName: "ApiKey Of organization"},
			OrganizationId: "organization_id",
			Role:           models.API_CLIENT,
		}, credentials)
		getter.AssertExpectations(t)
	})

	t.Run("unknown api key", func(t *testing.T) {
		getter := new(mocks.Database)
		getter.On("GetApiKeyByHash", nil, hash[:]).
			Return(models.ApiKey{}, models.NotFoundError)

		_, err := newTestValidator(getter, nil).Validate(context.Background(), "", key)

		assert.ErrorIs(t, err, models.UnAuthorizedError)
		getter.AssertExpectations(t)
	})
}

func TestValidator_Validate_AccessToken(t *testing.T) {
	accessToken := "some jwt"
	identity := models.Identity{UserId: "user_id", Email: "user@acme.test"}
	user := models.User{
		UserId:         "user_id",
		Email:          "user@acme.test",
		Role:           models.AGENT,
		OrganizationId: "organization_id",
	}

	t.Run("nominal", func(t *testing.T) {
		tokens := new(mocks.AccessTokenValidator)
		tokens.On("ValidateAccessToken", accessToken).Return(identity, nil)
		getter := new(mocks.Database)
		getter.On("UserByEmail", nil, identity.Email).Return(&user, nil)

		credentials, err := newTestValidator(getter, tokens).Validate(
			context.Background(), accessToken, "")

		assert.NoError(t, err)
		assert.Equal(t, user.IntoCredentials(), credentials)
		getter.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		tokens := new(mocks.AccessTokenValidator)
		tokens.On("ValidateAccessToken", accessToken).Return(identity, nil)
		getter := new(mocks.Database)
		getter.On("UserByEmail", nil, identity.Email).Return(nil, nil)

		_, err := newTestValidator(getter, tokens).Validate(
			context.Background(), accessToken, "")

		assert.ErrorIs(t, err, models.ErrUnknownUser)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := new(mocks.AccessTokenValidator)
		tokens.On("ValidateAccessToken", accessToken).
			Return(models.Identity{}, models.UnAuthorizedError)

		_, err := newTestValidator(new(mocks.Database), tokens).Validate(
			context.Background(), accessToken, "")

		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("no credentials at all", func(t *testing.T) {
		_, err := newTestValidator(new(mocks.Database), new(mocks.AccessTokenValidator)).
			Validate(context.Background(), "", "")

		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}
