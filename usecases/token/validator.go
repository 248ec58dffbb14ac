package token

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type keyAndOrganizationGetter interface {
	GetApiKeyByHash(ctx context.Context, exec repositories.Executor, hash []byte) (models.ApiKey, error)
	GetOrganizationById(ctx context.Context, exec repositories.Executor, organizationId string) (models.Organization, error)
}

type userGetter interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
}

type accessTokenValidator interface {
	ValidateAccessToken(accessToken string) (models.Identity, error)
}

// Validator turns an incoming api key or session token into credentials.
// Api key lookups hit the store, so resolved credentials are kept in a small
// expiring cache.
type Validator struct {
	executorFactory  executor_factory.ExecutorFactory
	getter           keyAndOrganizationGetter
	users            userGetter
	tokens           accessTokenValidator
	credentialsCache *expirable.LRU[string, models.Credentials]
}

func NewValidator(
	executorFactory executor_factory.ExecutorFactory,
	getter keyAndOrganizationGetter,
	users userGetter,
	tokens accessTokenValidator,
) *Validator {
	return &Validator{
		executorFactory:  executorFactory,
		getter:           getter,
		users:            users,
		tokens:           tokens,
		credentialsCache: expirable.NewLRU[string, models.Credentials](100, nil, utils.GlobalCacheDuration()),
	}
}

func (v *Validator) fromApiKey(ctx context.Context, key string) (models.Credentials, error) {
	if credentials, ok := v.credentialsCache.Get(key); ok {
		return credentials, nil
	}

	hash := sha256.Sum256([]byte(key))
	exec := v.executorFactory.NewExecutor()

	apiKey, err := v.getter.GetApiKeyByHash(ctx, exec, hash[:])
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid api key")
	}

	organization, err := v.getter.GetOrganizationById(ctx, exec, apiKey.OrganizationId)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("getter.GetOrganizationById error: %w", err)
	}

	name := fmt.Sprintf("ApiKey Of %s", organization.Name)
	credentials := models.NewCredentialWithApiKey(apiKey.OrganizationId, apiKey.Role, name)
	v.credentialsCache.Add(key, credentials)
	return credentials, nil
}

func (v *Validator) fromAccessToken(ctx context.Context, accessToken string) (models.Credentials, error) {
	identity, err := v.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return models.Credentials{}, err
	}

	user, err := v.users.UserByEmail(ctx, v.executorFactory.NewExecutor(), identity.Email)
	if err != nil {
		return models.Credentials{}, err
	}
	if user == nil {
		return models.Credentials{}, models.ErrUnknownUser
	}
	return user.IntoCredentials(), nil
}

func (v *Validator) Validate(ctx context.Context, accessToken, apiKey string) (models.Credentials, error) {
	if apiKey != "" {
		return v.fromApiKey(ctx, apiKey)
	}
	if accessToken != "" {
		return v.fromAccessToken(ctx, accessToken)
	}
	return models.Credentials{}, models.ErrUnauthenticated
}
