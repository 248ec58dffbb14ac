package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

type QueueIdUriInput struct {
	QueueId string `uri:"queue_id" binding:"required,uuid"`
}

func handleListQueues(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewQueueUsecase()
		queues, err := usecase.ListQueues(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"queues": pure_utils.Map(queues, dto.AdaptQueueDto),
		})
	}
}

func handleCreateQueue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var data dto.CreateQueueBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewQueueUsecase()
		queue, err := usecase.CreateQueue(ctx, models.CreateQueueInput{
			WorkspaceId: workspaceId,
			Name:        data.Name,
			Color:       data.Color,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"queue": dto.AdaptQueueDto(queue)})
	}
}

func handleUpdateQueue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri QueueIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateQueueBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewQueueUsecase()
		queue, err := usecase.UpdateQueue(ctx, workspaceId, models.UpdateQueueInput{
			Id:    uri.QueueId,
			Name:  data.Name,
			Color: data.Color,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"queue": dto.AdaptQueueDto(queue)})
	}
}

func handleDeleteQueue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri QueueIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewQueueUsecase()
		if presentError(ctx, c, usecase.DeleteQueue(ctx, workspaceId, uri.QueueId)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
