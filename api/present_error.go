package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

// presentError renders an error as the right HTTP status code and returns
// true, or returns false when there is nothing to present.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: errorCodeOf(err),
		})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: errorCodeOf(err),
		})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.UpstreamError):
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusBadGateway, dto.APIErrorResponse{Message: err.Error()})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{Message: "internal error"})
	}
	return true
}

func errorCodeOf(err error) dto.ErrorCode {
	switch {
	case errors.Is(err, models.ErrConversationClosed):
		return dto.ConversationClosed
	case errors.Is(err, models.ErrConversationNotAssigned):
		return dto.ConversationNotAssigned
	case errors.Is(err, models.ErrConnectionLimitReached):
		return dto.ConnectionLimitReached
	case errors.Is(err, models.ErrQueueHasConversations):
		return dto.QueueHasConversations
	case errors.Is(err, models.ErrUnknownUser):
		return dto.UnknownUser
	}
	return ""
}
