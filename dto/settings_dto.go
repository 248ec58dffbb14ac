package dto

import (
	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIEvolutionConfig struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
}

func AdaptEvolutionConfigDto(config models.EvolutionConfig) APIEvolutionConfig {
	return APIEvolutionConfig{
		BaseUrl: config.BaseUrl,
		ApiKey:  config.ApiKey,
	}
}

type SaveEvolutionConfigBody struct {
	BaseUrl *string `json:"base_url"`
	ApiKey  *string `json:"api_key"`
}

type APIDefaultInstance struct {
	InstanceName null.String `json:"instance_name"`
}

func AdaptDefaultInstanceDto(instanceName *string) APIDefaultInstance {
	return APIDefaultInstance{InstanceName: null.StringFromPtr(instanceName)}
}

type SetDefaultInstanceBody struct {
	InstanceName string `json:"instance_name" binding:"required"`
}
