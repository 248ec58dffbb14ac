package security

import (
	"errors"

	"github.com/zapdesk/zapdesk-backend/models"
)

type EnforceSecuritySettings interface {
	EnforceSecurity
	ReadMessagingSettings() error
	EditMessagingSettings() error
	ReadDashboard() error
	UploadMedia() error
	TriggerAutomation() error
}

type EnforceSecuritySettingsImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecuritySettingsImpl) ReadMessagingSettings() error {
	return errors.Join(
		e.Permission(models.MESSAGING_SETTINGS_READ),
	)
}

func (e *EnforceSecuritySettingsImpl) EditMessagingSettings() error {
	return errors.Join(
		e.Permission(models.MESSAGING_SETTINGS_EDIT),
	)
}

func (e *EnforceSecuritySettingsImpl) ReadDashboard() error {
	return errors.Join(
		e.Permission(models.DASHBOARD_READ),
	)
}

func (e *EnforceSecuritySettingsImpl) UploadMedia() error {
	return errors.Join(
		e.Permission(models.MEDIA_UPLOAD),
	)
}

func (e *EnforceSecuritySettingsImpl) TriggerAutomation() error {
	return errors.Join(
		e.Permission(models.AUTOMATION_TRIGGER),
	)
}
