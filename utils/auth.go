package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/models"
)

func ParseApiKeyHeader(header http.Header) string {
	return strings.TrimSpace(header.Get("X-API-Key"))
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", fmt.Errorf("malformed token: %w", models.UnAuthorizedError)
	}
	return authHeader[1], nil
}

func identityAttr(identity models.Identity) (attr slog.Attr, ok bool) {
	if identity.ApiKeyName != "" {
		return slog.String("ApiKeyName", identity.ApiKeyName), true
	}
	if identity.Email != "" {
		return slog.String("Email", identity.Email), true
	}
	return slog.Attr{}, false
}

type validator interface {
	Validate(ctx context.Context, accessToken, apiKey string) (models.Credentials, error)
}

type Authentication struct {
	Validator validator
}

func NewAuthentication(validator validator) Authentication {
	return Authentication{
		Validator: validator,
	}
}

func (a *Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()
	key := ParseApiKeyHeader(c.Request.Header)
	accessToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if err != nil {
		_ = c.Error(fmt.Errorf("could not parse authorization header: %w", err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	credentials, err := a.Validator.Validate(ctx, accessToken, key)
	if err != nil {
		_ = c.Error(fmt.Errorf("validator.Validate error: %w", err))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	// The frontend repeats the actor identity in headers. A mismatch with the
	// validated token means the caller is impersonating someone else.
	if err := ValidateIdentityHeaders(c.Request.Header, credentials); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	newContext := context.WithValue(ctx, ContextKeyCredentials, credentials)
	if attr, ok := identityAttr(credentials.ActorIdentity); ok {
		logger := LoggerFromContext(newContext).
			With(attr).
			With(slog.String("Role", credentials.Role.String()))
		newContext = context.WithValue(newContext, ContextKeyLogger, logger)
	}
	c.Request = c.Request.WithContext(newContext)
	c.Next()
}

func CredentialsFromGinContext(c *gin.Context) (models.Credentials, error) {
	creds, found := CredentialsFromCtx(c.Request.Context())
	if !found {
		return models.Credentials{}, models.ErrUnauthenticated
	}
	return creds, nil
}
