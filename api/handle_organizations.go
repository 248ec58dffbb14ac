package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
)

func handleListOrganizations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organizations, err := usecase.ListOrganizations(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"organizations": pure_utils.Map(organizations, dto.AdaptOrganizationSummaryDto),
		})
	}
}

func handleCreateOrganization(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateOrganizationBodyDto
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewOrganizationUsecase()
		organization, err := usecase.CreateOrganization(ctx, models.CreateOrganizationInput{
			Name: data.Name,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"organization": dto.AdaptOrganizationDto(organization),
		})
	}
}
