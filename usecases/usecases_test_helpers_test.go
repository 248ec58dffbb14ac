package usecases

import (
	"github.com/zapdesk/zapdesk-backend/infra"
)

func testEvolutionConfiguration() infra.EvolutionConfiguration {
	return infra.EvolutionConfiguration{
		BaseUrl:                "https://evolution.internal.test",
		ApiKey:                 "env-api-key",
		WebhookCallbackBaseUrl: "https://backend.internal.test",
	}
}

func testEmptyEvolutionConfiguration() infra.EvolutionConfiguration {
	return infra.EvolutionConfiguration{}
}
