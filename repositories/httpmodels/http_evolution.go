package httpmodels

import (
	"strings"

	"github.com/zapdesk/zapdesk-backend/models"
)

// Wire types of the Evolution API gateway.

type HTTPSendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type HTTPSendTextResponse struct {
	Key struct {
		Id string `json:"id"`
	} `json:"key"`
	Status string `json:"status"`
}

type HTTPSetWebhookRequest struct {
	Webhook struct {
		Enabled  bool     `json:"enabled"`
		Url      string   `json:"url"`
		ByEvents bool     `json:"webhookByEvents"`
		Events   []string `json:"events"`
	} `json:"webhook"`
}

type HTTPWebhookConfigResponse struct {
	Enabled bool     `json:"enabled"`
	Url     string   `json:"url"`
	Events  []string `json:"events"`
}

type HTTPConnectionStateResponse struct {
	Instance struct {
		InstanceName string `json:"instanceName"`
		State        string `json:"state"`
	} `json:"instance"`
}

func AdaptConnectionState(resp HTTPConnectionStateResponse) models.ConnectionStatus {
	switch strings.ToLower(resp.Instance.State) {
	case "open":
		return models.ConnectionConnected
	case "connecting":
		return models.ConnectionConnecting
	default:
		return models.ConnectionDisconnected
	}
}

// HTTPInboundEvent is the webhook delivery payload posted by the gateway.
type HTTPInboundEvent struct {
	Event    string         `json:"event"`
	Instance string         `json:"instance"`
	Data     map[string]any `json:"data"`
}

func AdaptInboundEvent(event HTTPInboundEvent) models.GatewayEvent {
	// Depending on the gateway version the event name arrives as
	// "messages.upsert" or "MESSAGES_UPSERT".
	name := strings.ToUpper(strings.ReplaceAll(event.Event, ".", "_"))
	return models.GatewayEvent{
		Event:        name,
		InstanceName: event.Instance,
		Data:         event.Data,
	}
}
