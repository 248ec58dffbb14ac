package mocks

import (
	"github.com/zapdesk/zapdesk-backend/repositories"
)

// ExecutorFactory hands out a nil executor so repository mocks can match on it.
type ExecutorFactory struct{}

func (ExecutorFactory) NewExecutor() repositories.Executor {
	return nil
}
