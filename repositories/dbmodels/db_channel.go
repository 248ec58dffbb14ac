package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBChannel struct {
	Id          string    `db:"id"`
	WorkspaceId string    `db:"workspace_id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_CHANNELS = "channels"

var SelectChannelColumn = utils.ColumnList[DBChannel]()

func AdaptChannel(db DBChannel) (models.Channel, error) {
	return models.Channel{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		Name:        db.Name,
		Type:        models.ChannelType(db.Type),
		CreatedAt:   db.CreatedAt,
	}, nil
}

type DBConnection struct {
	Id           string    `db:"id"`
	WorkspaceId  string    `db:"workspace_id"`
	ChannelId    string    `db:"channel_id"`
	InstanceName string    `db:"instance_name"`
	Status       string    `db:"status"`
	PhoneNumber  *string   `db:"phone_number"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const TABLE_CONNECTIONS = "connections"

var SelectConnectionColumn = utils.ColumnList[DBConnection]()

func AdaptConnection(db DBConnection) (models.Connection, error) {
	return models.Connection{
		Id:           db.Id,
		WorkspaceId:  db.WorkspaceId,
		ChannelId:    db.ChannelId,
		InstanceName: db.InstanceName,
		Status:       models.ConnectionStatus(db.Status),
		PhoneNumber:  db.PhoneNumber,
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}
