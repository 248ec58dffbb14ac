package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
)

// Database mocks the authentication-related store lookups.
type Database struct {
	mock.Mock
}

func (m *Database) GetApiKeyByHash(ctx context.Context, exec repositories.Executor,
	hash []byte,
) (models.ApiKey, error) {
	args := m.Called(exec, hash)
	return args.Get(0).(models.ApiKey), args.Error(1)
}

func (m *Database) GetOrganizationById(ctx context.Context, exec repositories.Executor,
	organizationId string,
) (models.Organization, error) {
	args := m.Called(exec, organizationId)
	return args.Get(0).(models.Organization), args.Error(1)
}

func (m *Database) UserByEmail(ctx context.Context, exec repositories.Executor,
	email string,
) (*models.User, error) {
	args := m.Called(exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AccessTokenValidator struct {
	mock.Mock
}

func (m *AccessTokenValidator) ValidateAccessToken(accessToken string) (models.Identity, error) {
	args := m.Called(accessToken)
	return args.Get(0).(models.Identity), args.Error(1)
}
