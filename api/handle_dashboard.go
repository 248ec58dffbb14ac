package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

func handleDashboardStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewDashboardUsecase()
		stats, err := usecase.GetStats(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": dto.AdaptDashboardStatsDto(stats)})
	}
}
