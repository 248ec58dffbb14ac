package models

import "time"

// MessagingSettings holds the per-workspace gateway configuration. BaseUrl and
// ApiKey override the env-level defaults when set.
type MessagingSettings struct {
	Id          string
	WorkspaceId string
	BaseUrl     *string
	ApiKey      *string
	// DefaultInstance is the gateway instance outbound traffic uses when the
	// caller does not pick one.
	DefaultInstance *string
	AiEnabled       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SaveMessagingSettingsInput struct {
	WorkspaceId string
	BaseUrl     *string
	ApiKey      *string
}

// InstanceToken authenticates inbound webhook deliveries for one gateway
// instance.
type InstanceToken struct {
	Id           string
	WorkspaceId  string
	InstanceName string
	Token        string
	CreatedAt    time.Time
}

// EvolutionConfig is the resolved gateway target for a workspace: the
// workspace-level settings row when present, the env defaults otherwise.
type EvolutionConfig struct {
	BaseUrl string
	ApiKey  string
}
