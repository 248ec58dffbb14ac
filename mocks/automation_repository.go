package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
)

type AutomationRepository struct {
	mock.Mock
}

func (r *AutomationRepository) TriggerChatAutomation(ctx context.Context,
	request models.ChatAutomationRequest,
) (models.ChatAutomationResponse, error) {
	args := r.Called(request)
	return args.Get(0).(models.ChatAutomationResponse), args.Error(1)
}
