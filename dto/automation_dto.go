package dto

import "github.com/zapdesk/zapdesk-backend/models"

type ChatResponseBody struct {
	ConversationId string `json:"conversation_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
}

type APIChatResponse struct {
	Active   bool   `json:"active"`
	Response string `json:"response,omitempty"`
}

func AdaptChatResponseDto(response models.ChatAutomationResponse) APIChatResponse {
	return APIChatResponse{
		Active:   response.Active,
		Response: response.Response,
	}
}
