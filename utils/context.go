package utils

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

const (
	HeaderSystemUserId    = "x-system-user-id"
	HeaderSystemUserEmail = "x-system-user-email"
	HeaderWorkspaceId     = "x-workspace-id"
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, ok
}

// WorkspaceIdFromRequest resolves the tenant scope of a request from the
// x-workspace-id header. Workspace-scoped handlers must call it before any
// store access.
func WorkspaceIdFromRequest(request *http.Request) (workspaceId string, err error) {
	if request == nil {
		return "", errors.Wrap(models.ForbiddenError, "no request passed to WorkspaceIdFromRequest")
	}

	if _, found := CredentialsFromCtx(request.Context()); !found {
		return "", errors.Wrap(models.ForbiddenError, "no credentials in context")
	}

	workspaceId = strings.TrimSpace(request.Header.Get(HeaderWorkspaceId))
	if workspaceId == "" {
		return "", models.ErrNoWorkspaceSelected
	}
	if err := ValidateUuid(workspaceId); err != nil {
		return "", err
	}
	return workspaceId, nil
}

// ValidateIdentityHeaders checks that the x-system-user-id and
// x-system-user-email headers, when present, name the authenticated actor.
func ValidateIdentityHeaders(header http.Header, creds models.Credentials) error {
	if headerUserId := strings.TrimSpace(header.Get(HeaderSystemUserId)); headerUserId != "" {
		if string(creds.ActorIdentity.UserId) != headerUserId {
			return errors.Wrapf(models.ErrIdentityHeaderMismatch,
				"%s header does not match the authenticated user", HeaderSystemUserId)
		}
	}
	if headerEmail := strings.TrimSpace(header.Get(HeaderSystemUserEmail)); headerEmail != "" {
		if !strings.EqualFold(creds.ActorIdentity.Email, headerEmail) {
			return errors.Wrapf(models.ErrIdentityHeaderMismatch,
				"%s header does not match the authenticated user", HeaderSystemUserEmail)
		}
	}
	return nil
}
