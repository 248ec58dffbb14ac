package infra

import "fmt"

type PgConfig struct {
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	MaxPoolConnections int
	SslMode            string
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

type TelemetryConfiguration struct {
	Enabled         bool
	ApplicationName string
}

// EvolutionConfiguration carries the env-level gateway defaults. Workspaces
// can override BaseUrl and ApiKey through their messaging settings row.
type EvolutionConfiguration struct {
	BaseUrl string
	ApiKey  string
	// WebhookCallbackBaseUrl is this backend's public base url, pushed to the
	// gateway so inbound events reach /webhooks/evolution/:instance.
	WebhookCallbackBaseUrl string
}

// N8nConfiguration points to the workflow engine webhook that produces
// assistant replies.
type N8nConfiguration struct {
	ChatWebhookUrl string
	ApiKey         string
}
