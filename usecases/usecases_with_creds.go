package usecases

import (
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/usecases/security"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceConversationSecurity() security.EnforceSecurityConversation {
	return &security.EnforceSecurityConversationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceOrganizationSecurity() security.EnforceSecurityOrganization {
	return &security.EnforceSecurityOrganizationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceWorkspaceSecurity() security.EnforceSecurityWorkspace {
	return &security.EnforceSecurityWorkspaceImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceWorkspaceAdminSecurity() security.EnforceSecurityWorkspaceAdmin {
	return &security.EnforceSecurityWorkspaceAdminImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceSettingsSecurity() security.EnforceSecuritySettings {
	return &security.EnforceSecuritySettingsImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewConversationUsecase() ConversationUsecase {
	return ConversationUsecase{
		enforceSecurity:    usecases.NewEnforceConversationSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewMessageUsecase() MessageUsecase {
	return MessageUsecase{
		enforceSecurity:    usecases.NewEnforceConversationSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		gatewayRepository:  usecases.Repositories.EvolutionRepository,
		evolutionConfig:    usecases.evolutionConfig,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewOrganizationUsecase() OrganizationUsecase {
	return OrganizationUsecase{
		enforceSecurity:    usecases.NewEnforceOrganizationSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewWorkspaceUsecase() WorkspaceUsecase {
	return WorkspaceUsecase{
		enforceSecurity:    usecases.NewEnforceWorkspaceSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		connectionLimit:    usecases.connectionLimit,
		credentials:        usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewChannelUsecase() ChannelUsecase {
	return ChannelUsecase{
		enforceSecurity:    usecases.NewEnforceWorkspaceAdminSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		gatewayRepository:  usecases.Repositories.EvolutionRepository,
		evolutionConfig:    usecases.evolutionConfig,
		connectionLimit:    usecases.connectionLimit,
	}
}

func (usecases *UsecasesWithCreds) NewQueueUsecase() QueueUsecase {
	return QueueUsecase{
		enforceSecurity:    usecases.NewEnforceWorkspaceAdminSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewTagUsecase() TagUsecase {
	return TagUsecase{
		enforceSecurity:    usecases.NewEnforceWorkspaceAdminSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewSettingsUsecase() SettingsUsecase {
	return SettingsUsecase{
		enforceSecurity:    usecases.NewEnforceSettingsSecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		evolutionConfig:    usecases.evolutionConfig,
	}
}

func (usecases *UsecasesWithCreds) NewDashboardUsecase() DashboardUsecase {
	return DashboardUsecase{
		enforceSecurity: usecases.NewEnforceSettingsSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ZapdeskDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewMediaUsecase() MediaUsecase {
	return MediaUsecase{
		enforceSecurity: usecases.NewEnforceSettingsSecurity(),
		blobRepository:  usecases.Repositories.BlobRepository,
		bucketUrl:       usecases.mediaBucketUrl,
	}
}

func (usecases *UsecasesWithCreds) NewAutomationUsecase() AutomationUsecase {
	return AutomationUsecase{
		enforceSecurity: usecases.NewEnforceSettingsSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ZapdeskDbRepository,
		automation:      usecases.Repositories.N8nRepository,
	}
}
