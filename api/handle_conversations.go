package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

type ConversationIdUriInput struct {
	ConversationId string `uri:"conversation_id" binding:"required,uuid"`
}

func handleListConversations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		params := struct {
			Status         string `form:"status" binding:"omitempty,oneof=pending active closed"`
			QueueId        string `form:"queue_id" binding:"omitempty,uuid"`
			AssignedUserId string `form:"assigned_user_id" binding:"omitempty,uuid"`
		}{}
		if err := c.ShouldBind(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		filters := models.ConversationFilters{WorkspaceId: workspaceId}
		if params.Status != "" {
			status := models.ConversationStatus(params.Status)
			filters.Status = &status
		}
		if params.QueueId != "" {
			filters.QueueId = &params.QueueId
		}
		if params.AssignedUserId != "" {
			assignedUserId := models.UserId(params.AssignedUserId)
			filters.AssignedUserId = &assignedUserId
		}

		usecase := usecasesWithCreds(ctx, uc).NewConversationUsecase()
		conversations, err := usecase.ListConversations(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"conversations": pure_utils.Map(conversations, dto.AdaptConversationDto),
		})
	}
}

func handleGetConversation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri ConversationIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConversationUsecase()
		conversation, err := usecase.GetConversation(ctx, workspaceId, uri.ConversationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"conversation": dto.AdaptConversationDto(conversation),
		})
	}
}

func handleAcceptConversation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri ConversationIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConversationUsecase()
		result, err := usecase.AcceptConversation(ctx, workspaceId, uri.ConversationId)
		if presentError(ctx, c, err) {
			return
		}

		var conversation *models.Conversation
		if result.Accepted {
			refreshed, err := usecase.GetConversation(ctx, workspaceId, uri.ConversationId)
			if presentError(ctx, c, err) {
				return
			}
			conversation = &refreshed
		}
		c.JSON(http.StatusOK, dto.AdaptAcceptConversationResponse(result, conversation))
	}
}

func handleEndConversation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri ConversationIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConversationUsecase()
		result, err := usecase.EndConversation(ctx, workspaceId, uri.ConversationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptEndConversationResponse(result))
	}
}

func handleListActivities(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri ConversationIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConversationUsecase()
		activities, err := usecase.ListActivities(ctx, workspaceId, uri.ConversationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"activities": pure_utils.Map(activities, dto.AdaptActivityDto),
		})
	}
}
