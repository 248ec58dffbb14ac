package models

// Analytics event names, one per notable lifecycle operation.
const (
	AnalyticsConversationAccepted = "Conversation accepted"
	AnalyticsConversationEnded    = "Conversation ended"
	AnalyticsMessageSent          = "Message sent"
	AnalyticsConnectionCreated    = "Connection created"
	AnalyticsOrganizationCreated  = "Organization created"
	AnalyticsWorkspaceCreated     = "Workspace created"
	AnalyticsMediaUploaded        = "Media uploaded"
	AnalyticsWebhookFixed         = "Webhook fixed"
	AnalyticsAutomationTriggered  = "Automation triggered"
)
