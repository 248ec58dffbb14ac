package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories/httpmodels"
)

// EvolutionRepository is the HTTP client of the WhatsApp gateway. The target
// base url and api key are resolved per workspace by the caller; errors from
// the gateway are passed through without retrying.
type EvolutionRepository struct {
	client *http.Client
}

func NewEvolutionRepository(client *http.Client) *EvolutionRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &EvolutionRepository{client: client}
}

func (repo *EvolutionRepository) doRequest(ctx context.Context, config models.EvolutionConfig,
	method, path string, body any, out any,
) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, config.BaseUrl+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", config.ApiKey)

	resp, err := repo.client.Do(req)
	if err != nil {
		return errors.Wrap(models.UpstreamError, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.Wrapf(models.UpstreamError, "gateway returned %d: %s",
			resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(models.UpstreamError, "could not decode gateway response")
		}
	}
	return nil
}

// SendTextMessage forwards an outbound text message and returns the gateway's
// message id.
func (repo *EvolutionRepository) SendTextMessage(ctx context.Context, config models.EvolutionConfig,
	instanceName string, phoneNumber string, text string,
) (gatewayMessageId string, err error) {
	request := httpmodels.HTTPSendTextRequest{
		Number: phoneNumber,
		Text:   text,
	}

	var response httpmodels.HTTPSendTextResponse
	err = repo.doRequest(ctx, config, http.MethodPost,
		fmt.Sprintf("/message/sendText/%s", instanceName), request, &response)
	if err != nil {
		return "", err
	}
	return response.Key.Id, nil
}

// SetWebhook points the instance's webhook at this backend.
func (repo *EvolutionRepository) SetWebhook(ctx context.Context, config models.EvolutionConfig,
	setup models.WebhookSetup,
) error {
	var request httpmodels.HTTPSetWebhookRequest
	request.Webhook.Enabled = true
	request.Webhook.Url = setup.Url
	request.Webhook.Events = setup.Events

	return repo.doRequest(ctx, config, http.MethodPost,
		fmt.Sprintf("/webhook/set/%s", setup.InstanceName), request, nil)
}

func (repo *EvolutionRepository) GetWebhookConfig(ctx context.Context, config models.EvolutionConfig,
	instanceName string,
) (url string, events []string, err error) {
	var response httpmodels.HTTPWebhookConfigResponse
	err = repo.doRequest(ctx, config, http.MethodGet,
		fmt.Sprintf("/webhook/find/%s", instanceName), nil, &response)
	if err != nil {
		return "", nil, err
	}
	return response.Url, response.Events, nil
}

func (repo *EvolutionRepository) GetInstanceState(ctx context.Context, config models.EvolutionConfig,
	instanceName string,
) (models.ConnectionStatus, error) {
	var response httpmodels.HTTPConnectionStateResponse
	err := repo.doRequest(ctx, config, http.MethodGet,
		fmt.Sprintf("/instance/connectionState/%s", instanceName), nil, &response)
	if err != nil {
		return models.ConnectionDisconnected, err
	}
	return httpmodels.AdaptConnectionState(response), nil
}
