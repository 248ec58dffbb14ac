package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/repositories/httpmodels"
	"github.com/zapdesk/zapdesk-backend/usecases"
	"github.com/zapdesk/zapdesk-backend/utils"
)

// handleEvolutionWebhook ingests gateway deliveries. The instance token in the
// query string is the only authentication: this route runs outside the user
// auth middleware.
func handleEvolutionWebhook(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.LoggerFromContext(ctx)

		instanceName := c.Param("instance_name")
		token := c.Query("token")

		usecase := uc.NewInboundWebhookUsecase()
		connection, err := usecase.AuthenticateInstance(ctx, instanceName, token)
		if presentError(ctx, c, err) {
			return
		}

		var payload httpmodels.HTTPInboundEvent
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		event := httpmodels.AdaptInboundEvent(payload)
		if event.InstanceName == "" {
			event.InstanceName = instanceName
		}

		if err := usecase.HandleEvent(ctx, connection, event); err != nil {
			// The gateway retries on non-2xx. Surface the failure but log the
			// delivery details for debugging.
			logger.ErrorContext(ctx, "failed to process gateway event",
				"event", event.Event, "instance", instanceName, "error", err)
			presentError(ctx, c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}
