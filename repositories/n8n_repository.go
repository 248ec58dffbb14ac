package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
)

// N8nRepository calls the workflow engine that generates assistant replies.
type N8nRepository struct {
	config infra.N8nConfiguration
	client *http.Client
}

func NewN8nRepository(config infra.N8nConfiguration, client *http.Client) *N8nRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &N8nRepository{config: config, client: client}
}

type n8nChatRequest struct {
	WorkspaceId    string `json:"workspaceId"`
	ConversationId string `json:"conversationId"`
	PhoneNumber    string `json:"phoneNumber"`
	Message        string `json:"message"`
}

type n8nChatResponse struct {
	Response string `json:"response"`
	Active   bool   `json:"active"`
}

func (repo *N8nRepository) TriggerChatAutomation(ctx context.Context,
	request models.ChatAutomationRequest,
) (models.ChatAutomationResponse, error) {
	if repo.config.ChatWebhookUrl == "" {
		return models.ChatAutomationResponse{Active: false}, nil
	}

	buf, err := json.Marshal(n8nChatRequest{
		WorkspaceId:    request.WorkspaceId,
		ConversationId: request.ConversationId,
		PhoneNumber:    request.PhoneNumber,
		Message:        request.Message,
	})
	if err != nil {
		return models.ChatAutomationResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		repo.config.ChatWebhookUrl, bytes.NewReader(buf))
	if err != nil {
		return models.ChatAutomationResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if repo.config.ApiKey != "" {
		req.Header.Set("X-API-Key", repo.config.ApiKey)
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return models.ChatAutomationResponse{}, errors.Wrap(models.UpstreamError, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return models.ChatAutomationResponse{}, errors.Wrapf(models.UpstreamError,
			"workflow engine returned %d", resp.StatusCode)
	}

	var response n8nChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return models.ChatAutomationResponse{}, errors.Wrap(models.UpstreamError,
			"could not decode workflow engine response")
	}

	return models.ChatAutomationResponse{
		Response: response.Response,
		Active:   response.Active,
	}, nil
}
