package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/zapdesk/zapdesk-backend/usecases"
	"github.com/zapdesk/zapdesk-backend/utils"
)

const maxMediaFileSize = 10 * 1024 * 1024 // 10MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))

	// Authenticated with the per-instance token carried in the query string,
	// not with user credentials.
	r.POST("/webhooks/evolution/:instance_name", handleEvolutionWebhook(uc))

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.GET("/conversations", handleListConversations(uc))
	router.GET("/conversations/:conversation_id", handleGetConversation(uc))
	router.POST("/conversations/:conversation_id/accept", handleAcceptConversation(uc))
	router.POST("/conversations/:conversation_id/end", handleEndConversation(uc))
	router.GET("/conversations/:conversation_id/messages", handleListMessages(uc))
	router.POST("/conversations/:conversation_id/messages",
		timeoutMiddleware(conf.DefaultTimeout), handleSendMessage(uc))
	router.GET("/conversations/:conversation_id/activities", handleListActivities(uc))

	router.GET("/channels", handleListChannels(uc))
	router.GET("/connections", handleListConnections(uc))
	router.POST("/connections", handleCreateConnection(uc))

	router.GET("/queues", handleListQueues(uc))
	router.POST("/queues", handleCreateQueue(uc))
	router.PATCH("/queues/:queue_id", handleUpdateQueue(uc))
	router.DELETE("/queues/:queue_id", handleDeleteQueue(uc))

	router.GET("/tags", handleListTags(uc))
	router.POST("/tags", handleCreateTag(uc))
	router.PATCH("/tags/:tag_id", handleUpdateTag(uc))
	router.DELETE("/tags/:tag_id", handleDeleteTag(uc))
	router.POST("/contacts/:contact_id/tags", handleAttachTag(uc))
	router.DELETE("/contacts/:contact_id/tags/:tag_id", handleDetachTag(uc))

	router.GET("/workspaces", handleListWorkspaces(uc))
	router.POST("/workspaces", handleCreateWorkspace(uc))
	router.PATCH("/workspaces/:workspace_id", handleUpdateWorkspace(uc))
	router.POST("/workspaces/:workspace_id/members", handleAddWorkspaceMember(uc))

	router.GET("/organizations", handleListOrganizations(uc))
	router.POST("/organizations", handleCreateOrganization(uc))

	router.GET("/dashboard", handleDashboardStats(uc))

	// The /functions group keeps the serverless envelope contract: business
	// failures are HTTP 200 with success false.
	functions := r.Group("/functions").Use(auth.Middleware)
	functions.POST("/get-default-instance", handleGetDefaultInstance(uc))
	functions.POST("/set-default-instance", handleSetDefaultInstance(uc))
	functions.POST("/get-evolution-config", handleGetEvolutionConfig(uc))
	functions.POST("/save-evolution-config", handleSaveEvolutionConfig(uc))
	functions.POST("/get-workspace-limits", handleGetWorkspaceLimits(uc))
	functions.POST("/workspace-users", handleWorkspaceUsers(uc))
	functions.POST("/upload-workspace-media",
		limits.RequestSizeLimiter(maxMediaFileSize), handleUploadWorkspaceMedia(uc))
	functions.POST("/fix-webhook", timeoutMiddleware(conf.DefaultTimeout), handleFixWebhook(uc))
	functions.POST("/test-webhook", timeoutMiddleware(conf.DefaultTimeout), handleTestWebhook(uc))
	functions.POST("/ai-chat-response", timeoutMiddleware(conf.DefaultTimeout), handleAiChatResponse(uc))
}
