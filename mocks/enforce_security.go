package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadOrganization(organizationId string) error {
	args := e.Called(organizationId)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadConversation(conversation models.Conversation) error {
	args := e.Called(conversation)
	return args.Error(0)
}

func (e *EnforceSecurity) AcceptConversation(conversation models.Conversation) error {
	args := e.Called(conversation)
	return args.Error(0)
}

func (e *EnforceSecurity) EndConversation(conversation models.Conversation) error {
	args := e.Called(conversation)
	return args.Error(0)
}

func (e *EnforceSecurity) SendMessage(conversation models.Conversation) error {
	args := e.Called(conversation)
	return args.Error(0)
}

func (e *EnforceSecurity) ListOrganizations() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateOrganization() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadWorkspace(workspace models.Workspace) error {
	args := e.Called(workspace)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateWorkspace(organizationId string) error {
	args := e.Called(organizationId)
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateWorkspace(workspace models.Workspace) error {
	args := e.Called(workspace)
	return args.Error(0)
}

func (e *EnforceSecurity) ListWorkspaceMembers(workspace models.Workspace) error {
	args := e.Called(workspace)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadQueue() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) EditQueue() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadTag() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) EditTag() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadChannel() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateConnection() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ConfigureWebhook() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadMessagingSettings() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) EditMessagingSettings() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadDashboard() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UploadMedia() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) TriggerAutomation() error {
	args := e.Called()
	return args.Error(0)
}
