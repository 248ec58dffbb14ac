package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

func handleListMessages(uc usecases.Usecases) func(c *gin.Context) {
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

		usecase := usecasesWithCreds(ctx, uc).NewMessageUsecase()
		messages, err := usecase.ListMessages(ctx, workspaceId, uri.ConversationId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"messages": pure_utils.Map(messages, dto.AdaptMessageDto),
		})
	}
}

func handleSendMessage(uc usecases.Usecases) func(c *gin.Context) {
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
		var data dto.SendMessageBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		messageType := models.MessageTypeText
		if data.Type != "" {
			messageType = models.MessageType(data.Type)
		}

		creds := usecasesWithCreds(ctx, uc)
		usecase := creds.NewMessageUsecase()
		message, err := usecase.SendMessage(ctx, models.SendMessageInput{
			ConversationId: uri.ConversationId,
			WorkspaceId:    workspaceId,
			Content:        data.Content,
			Type:           messageType,
			SenderUserId:   creds.Credentials.ActorIdentity.UserId,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": dto.AdaptMessageDto(message),
		})
	}
}
