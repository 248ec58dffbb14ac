package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// UpstreamError is rendered with the http status code 500, the upstream
	// message is passed through verbatim
	UpstreamError = errors.New("upstream service error")
)

// Authentication related errors
var (
	ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

	// ErrUnauthenticated is raised before any store access when no session
	// identity can be derived from the request
	ErrUnauthenticated = errors.Wrap(UnAuthorizedError, "no authenticated user")

	// ErrNoWorkspaceSelected is raised before any store access when a
	// workspace-scoped call carries no x-workspace-id header
	ErrNoWorkspaceSelected = errors.Wrap(BadParameterError, "no workspace selected")

	ErrIdentityHeaderMismatch = errors.Wrap(UnAuthorizedError,
		"identity headers do not match the authenticated user")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Conversation lifecycle errors
var (
	ErrConversationNotAssigned = errors.Wrap(BadParameterError,
		"conversation is not assigned")
	ErrConversationClosed = errors.Wrap(BadParameterError,
		"conversation is closed")
)

// Workspace administration errors
var (
	ErrQueueHasConversations = errors.Wrap(ForbiddenError,
		"this queue still has conversations attached and cannot be deleted")
	ErrConnectionLimitReached = errors.Wrap(ForbiddenError,
		"the workspace connection limit is reached")
)
