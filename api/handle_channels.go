package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

func handleListChannels(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewChannelUsecase()
		channels, err := usecase.ListChannels(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"channels": pure_utils.Map(channels, dto.AdaptChannelDto),
		})
	}
}

func handleListConnections(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewChannelUsecase()
		connections, err := usecase.ListConnections(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"connections": pure_utils.Map(connections, dto.AdaptConnectionDto),
		})
	}
}

func handleCreateConnection(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var data dto.CreateConnectionBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewChannelUsecase()
		connection, err := usecase.CreateConnection(ctx, models.CreateConnectionInput{
			WorkspaceId:  workspaceId,
			ChannelId:    data.ChannelId,
			InstanceName: data.InstanceName,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"connection": dto.AdaptConnectionDto(connection),
		})
	}
}
