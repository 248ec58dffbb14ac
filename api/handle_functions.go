package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
	"github.com/zapdesk/zapdesk-backend/usecases"
	"github.com/zapdesk/zapdesk-backend/utils"
)

// presentFunctionResult renders the serverless envelope. Domain failures ride
// inside a 200 payload; missing parameters and auth failures keep their HTTP
// status codes so callers can still distinguish caller bugs from outcomes.
func presentFunctionResult(ctx context.Context, c *gin.Context, data any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, dto.FunctionSuccess(data))
		return
	}
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.FunctionFailure(err.Error()))
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, dto.FunctionFailure(err.Error()))
	case errors.Is(err, models.ForbiddenError),
		errors.Is(err, models.NotFoundError),
		errors.Is(err, models.ConflictError),
		errors.Is(err, models.UpstreamError):
		c.JSON(http.StatusOK, dto.FunctionFailure(err.Error()))
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, dto.FunctionFailure("internal error"))
	}
}

// functionWorkspaceId resolves the workspace named in the function body,
// falling back to the x-workspace-id header, and checks access.
func functionWorkspaceId(ctx context.Context, c *gin.Context, uc usecases.Usecases,
	bodyWorkspaceId string,
) (string, error) {
	workspaceId := bodyWorkspaceId
	if workspaceId == "" {
		var err error
		workspaceId, err = utils.WorkspaceIdFromRequest(c.Request)
		if err != nil {
			return "", err
		}
	}
	usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
	if err := usecase.ValidateWorkspaceAccess(ctx, workspaceId); err != nil {
		return "", err
	}
	return workspaceId, nil
}

func handleGetDefaultInstance(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		instanceName, err := usecase.GetDefaultInstance(ctx, workspaceId)
		presentFunctionResult(ctx, c, dto.AdaptDefaultInstanceDto(instanceName), err)
	}
}

func handleSetDefaultInstance(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Previous API versions named the first field orgId. It carries the
		// workspace id, like every other function in this group.
		data := struct {
			WorkspaceId string `json:"workspaceId"`
			Instance    string `json:"instance" binding:"required"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("instance is required"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		err = usecase.SetDefaultInstance(ctx, workspaceId, data.Instance)
		presentFunctionResult(ctx, c, gin.H{"defaultInstance": data.Instance}, err)
	}
}

func handleGetEvolutionConfig(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		config, err := usecase.GetEvolutionConfig(ctx, workspaceId)
		presentFunctionResult(ctx, c, gin.H{
			"url":    config.BaseUrl,
			"apiKey": config.ApiKey,
		}, err)
	}
}

func handleSaveEvolutionConfig(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId     string  `json:"workspaceId"`
			EvolutionUrl    *string `json:"evolutionUrl"`
			EvolutionApiKey *string `json:"evolutionApiKey"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		err = usecase.SaveEvolutionConfig(ctx, models.SaveMessagingSettingsInput{
			WorkspaceId: workspaceId,
			BaseUrl:     data.EvolutionUrl,
			ApiKey:      data.EvolutionApiKey,
		})
		presentFunctionResult(ctx, c, nil, err)
	}
}

func handleGetWorkspaceLimits(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
		limits, err := usecase.GetWorkspaceLimits(ctx, workspaceId)
		presentFunctionResult(ctx, c, gin.H{
			"connection_limit": limits.ConnectionLimit,
		}, err)
	}
}

func handleWorkspaceUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkspaceUsecase()
		users, err := usecase.ListWorkspaceUsers(ctx, workspaceId)
		presentFunctionResult(ctx, c, pure_utils.Map(users, dto.AdaptUserDto), err)
	}
}

func handleUploadWorkspaceMedia(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		workspaceId, err := functionWorkspaceId(ctx, c, uc, c.PostForm("workspaceId"))
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("file is required"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}
		defer file.Close()

		usecase := usecasesWithCreds(ctx, uc).NewMediaUsecase()
		media, err := usecase.UploadMedia(ctx, models.UploadMediaInput{
			WorkspaceId: workspaceId,
			Type:        models.MediaType(c.PostForm("type")),
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      file,
		})
		presentFunctionResult(ctx, c, dto.AdaptUploadedMediaDto(media), err)
	}
}

func handleFixWebhook(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewChannelUsecase()
		setup, err := usecase.FixWebhook(ctx, workspaceId)
		presentFunctionResult(ctx, c, dto.AdaptWebhookSetupDto(setup), err)
	}
}

func handleTestWebhook(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId string `json:"workspaceId"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("invalid request body"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewChannelUsecase()
		check, err := usecase.TestWebhook(ctx, workspaceId)
		presentFunctionResult(ctx, c, dto.AdaptWebhookCheckDto(check), err)
	}
}

func handleAiChatResponse(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := struct {
			WorkspaceId    string `json:"workspaceId"`
			ConversationId string `json:"conversationId" binding:"required"`
			Message        string `json:"message" binding:"required"`
			PhoneNumber    string `json:"phoneNumber"`
		}{}
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, dto.FunctionFailure("message and conversationId are required"))
			return
		}
		workspaceId, err := functionWorkspaceId(ctx, c, uc, data.WorkspaceId)
		if err != nil {
			presentFunctionResult(ctx, c, nil, err)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		response, err := usecase.GetChatResponse(ctx, workspaceId, models.ChatAutomationRequest{
			ConversationId: data.ConversationId,
			Message:        data.Message,
			PhoneNumber:    data.PhoneNumber,
		})
		presentFunctionResult(ctx, c, gin.H{
			"ai_response": response.Response,
			"ai_active":   response.Active,
		}, err)
	}
}
