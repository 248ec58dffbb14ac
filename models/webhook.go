package models

// WebhookSetup is the configuration pushed to the gateway for an instance so
// that message and connection events reach this backend.
type WebhookSetup struct {
	InstanceName string
	Url          string
	Events       []string
}

// GatewayWebhookEvents is the event set every instance webhook subscribes to.
var GatewayWebhookEvents = []string{
	"MESSAGES_UPSERT",
	"CONNECTION_UPDATE",
	"QRCODE_UPDATED",
}

// WebhookCheckResult reports a webhook connectivity test, passed through to
// the caller verbatim.
type WebhookCheckResult struct {
	InstanceName string
	Url          string
	Reachable    bool
	StatusCode   int
	Detail       string
}

// GatewayEvent is a decoded inbound webhook delivery.
type GatewayEvent struct {
	Event        string
	InstanceName string
	Data         map[string]any
}
