package dto

import "github.com/zapdesk/zapdesk-backend/models"

type APIWebhookSetup struct {
	InstanceName string   `json:"instance_name"`
	Url          string   `json:"url"`
	Events       []string `json:"events"`
}

func AdaptWebhookSetupDto(setup models.WebhookSetup) APIWebhookSetup {
	return APIWebhookSetup{
		InstanceName: setup.InstanceName,
		Url:          setup.Url,
		Events:       setup.Events,
	}
}

type APIWebhookCheck struct {
	InstanceName string `json:"instance_name"`
	Url          string `json:"url"`
	Reachable    bool   `json:"reachable"`
	StatusCode   int    `json:"status_code,omitempty"`
	Detail       string `json:"detail,omitempty"`
}

func AdaptWebhookCheckDto(check models.WebhookCheckResult) APIWebhookCheck {
	return APIWebhookCheck{
		InstanceName: check.InstanceName,
		Url:          check.Url,
		Reachable:    check.Reachable,
		StatusCode:   check.StatusCode,
		Detail:       check.Detail,
	}
}

type WebhookInstanceBody struct {
	InstanceName *string `json:"instance_name"`
}
