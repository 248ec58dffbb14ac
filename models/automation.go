package models

// ChatAutomationRequest is forwarded to the workflow engine to produce an
// assistant reply for an inbound message.
type ChatAutomationRequest struct {
	WorkspaceId    string
	ConversationId string
	PhoneNumber    string
	Message        string
}

// ChatAutomationResponse is the workflow engine's answer. Active is false when
// automation is disabled for the workspace, in which case Response is empty.
type ChatAutomationResponse struct {
	Response string
	Active   bool
}
