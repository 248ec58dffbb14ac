package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EvolutionGateway struct {
	mock.Mock
}

func (r *EvolutionGateway) SendTextMessage(ctx context.Context, config models.EvolutionConfig,
	instanceName string, phoneNumber string, text string,
) (string, error) {
	args := r.Called(config, instanceName, phoneNumber, text)
	return args.String(0), args.Error(1)
}
