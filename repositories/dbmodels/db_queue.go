package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBQueue struct {
	Id          string    `db:"id"`
	WorkspaceId string    `db:"workspace_id"`
	Name        string    `db:"name"`
	Color       *string   `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_QUEUES = "queues"

var SelectQueueColumn = utils.ColumnList[DBQueue]()

func AdaptQueue(db DBQueue) (models.Queue, error) {
	return models.Queue{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		Name:        db.Name,
		Color:       db.Color,
		CreatedAt:   db.CreatedAt,
	}, nil
}
