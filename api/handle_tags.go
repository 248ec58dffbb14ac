package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

type TagIdUriInput struct {
	TagId string `uri:"tag_id" binding:"required,uuid"`
}

type ContactIdUriInput struct {
	ContactId string `uri:"contact_id" binding:"required,uuid"`
}

func handleListTags(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		tags, err := usecase.ListTags(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"tags": pure_utils.Map(tags, dto.AdaptTagDto)})
	}
}

func handleCreateTag(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var data dto.CreateTagBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		tag, err := usecase.CreateTag(ctx, models.CreateTagInput{
			WorkspaceId: workspaceId,
			Name:        data.Name,
			Color:       data.Color,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"tag": dto.AdaptTagDto(tag)})
	}
}

func handleUpdateTag(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri TagIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateTagBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		tag, err := usecase.UpdateTag(ctx, workspaceId, models.UpdateTagInput{
			Id:    uri.TagId,
			Name:  data.Name,
			Color: data.Color,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"tag": dto.AdaptTagDto(tag)})
	}
}

func handleDeleteTag(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri TagIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		if presentError(ctx, c, usecase.DeleteTag(ctx, workspaceId, uri.TagId)) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleAttachTag(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		var uri ContactIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.AttachTagBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		err = usecase.AttachTagToContact(ctx, workspaceId, uri.ContactId, data.TagId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusCreated)
	}
}

func handleDetachTag(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := workspaceIdFromRequest(ctx, c, uc)
		if presentError(ctx, c, err) {
			return
		}
		uri := struct {
			ContactId string `uri:"contact_id" binding:"required,uuid"`
			TagId     string `uri:"tag_id" binding:"required,uuid"`
		}{}
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTagUsecase()
		err = usecase.DetachTagFromContact(ctx, workspaceId, uri.ContactId, uri.TagId)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
