package usecases

import (
	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
)

// resolveGatewayConfig returns the gateway target for a workspace: the
// workspace settings row when it overrides the defaults, the env-level
// configuration otherwise.
func resolveGatewayConfig(settings *models.MessagingSettings,
	config infra.EvolutionConfiguration,
) (models.EvolutionConfig, error) {
	resolved := models.EvolutionConfig{
		BaseUrl: config.BaseUrl,
		ApiKey:  config.ApiKey,
	}
	if settings != nil {
		if settings.BaseUrl != nil && *settings.BaseUrl != "" {
			resolved.BaseUrl = *settings.BaseUrl
		}
		if settings.ApiKey != nil && *settings.ApiKey != "" {
			resolved.ApiKey = *settings.ApiKey
		}
	}
	if resolved.BaseUrl == "" {
		return models.EvolutionConfig{}, errors.Wrap(models.BadParameterError,
			"no messaging gateway configured for this workspace")
	}
	return resolved, nil
}

// resolveInstanceName picks the gateway instance for outbound traffic: the
// workspace default when set, the only connection otherwise.
func resolveInstanceName(settings *models.MessagingSettings,
	connections []models.Connection,
) (string, error) {
	if settings != nil && settings.DefaultInstance != nil && *settings.DefaultInstance != "" {
		return *settings.DefaultInstance, nil
	}
	if len(connections) > 0 {
		return connections[0].InstanceName, nil
	}
	return "", errors.Wrap(models.BadParameterError,
		"no gateway instance configured for this workspace")
}
