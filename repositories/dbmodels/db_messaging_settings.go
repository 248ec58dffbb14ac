package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBMessagingSettings struct {
	Id              string    `db:"id"`
	WorkspaceId     string    `db:"workspace_id"`
	BaseUrl         *string   `db:"base_url"`
	ApiKey          *string   `db:"api_key"`
	DefaultInstance *string   `db:"default_instance"`
	AiEnabled       bool      `db:"ai_enabled"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const TABLE_MESSAGING_SETTINGS = "workspace_messaging_settings"

var SelectMessagingSettingsColumn = utils.ColumnList[DBMessagingSettings]()

func AdaptMessagingSettings(db DBMessagingSettings) (models.MessagingSettings, error) {
	return models.MessagingSettings{
		Id:              db.Id,
		WorkspaceId:     db.WorkspaceId,
		BaseUrl:         db.BaseUrl,
		ApiKey:          db.ApiKey,
		DefaultInstance: db.DefaultInstance,
		AiEnabled:       db.AiEnabled,
		CreatedAt:       db.CreatedAt,
		UpdatedAt:       db.UpdatedAt,
	}, nil
}

type DBInstanceToken struct {
	Id           string    `db:"id"`
	WorkspaceId  string    `db:"workspace_id"`
	InstanceName string    `db:"instance_name"`
	Token        string    `db:"token"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_INSTANCE_TOKENS = "evolution_instance_tokens"

var SelectInstanceTokenColumn = utils.ColumnList[DBInstanceToken]()

func AdaptInstanceToken(db DBInstanceToken) (models.InstanceToken, error) {
	return models.InstanceToken{
		Id:           db.Id,
		WorkspaceId:  db.WorkspaceId,
		InstanceName: db.InstanceName,
		Token:        db.Token,
		CreatedAt:    db.CreatedAt,
	}, nil
}
