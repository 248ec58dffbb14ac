package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/utils"
)

func handleGetCredentials() func(c *gin.Context) {
	return func(c *gin.Context) {
		credentials, err := utils.CredentialsFromGinContext(c)
		if presentError(c.Request.Context(), c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialDto(credentials),
		})
	}
}
