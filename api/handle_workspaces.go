package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

type WorkspaceIdUriInput struct {
	WorkspaceId string `uri:"workspace_id" binding:"required,uuid"`
}

// handleListWorkspaces serves the pre-selection call: the x-workspace-id
// header is not required here, the caller is picking one.
func handleListWorkspaces(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
		workspaces, err := usecase.ListWorkspaces(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"workspaces": pure_utils.Map(workspaces, dto.AdaptWorkspaceDto),
		})
	}
}

func handleCreateWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateWorkspaceBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		creds := usecasesWithCreds(ctx, uc)
		usecase := creds.NewWorkspaceUsecase()
		workspace, err := usecase.CreateWorkspace(ctx, models.CreateWorkspaceInput{
			OrganizationId: creds.Credentials.OrganizationId,
			Name:           data.Name,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"workspace": dto.AdaptWorkspaceDto(workspace),
		})
	}
}

func handleUpdateWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri WorkspaceIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateWorkspaceBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
		workspace, err := usecase.UpdateWorkspace(ctx, models.UpdateWorkspaceInput{
			Id:           uri.WorkspaceId,
			Name:         data.Name,
			PrimaryColor: data.PrimaryColor,
			LogoUrl:      data.LogoUrl,
			BannerUrl:    data.BannerUrl,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"workspace": dto.AdaptWorkspaceDto(workspace),
		})
	}
}

func handleAddWorkspaceMember(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri WorkspaceIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.AddWorkspaceMemberBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		role := models.WorkspaceMemberRole(data.Role)
		if role == "" {
			role = models.WorkspaceMemberRoleAgent
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
		err := usecase.AddWorkspaceMember(ctx, uri.WorkspaceId,
			models.UserId(data.UserId), role)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusCreated)
	}
}
