package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBActivity struct {
	Id             string         `db:"id"`
	WorkspaceId    string         `db:"workspace_id"`
	UserId         *string        `db:"user_id"`
	Type           string         `db:"type"`
	ConversationId *string        `db:"conversation_id"`
	Details        map[string]any `db:"details"`
	CreatedAt      time.Time      `db:"created_at"`
}

const TABLE_ACTIVITIES = "activities"

var SelectActivityColumn = utils.ColumnList[DBActivity]()

func AdaptActivity(db DBActivity) (models.Activity, error) {
	activity := models.Activity{
		Id:             db.Id,
		WorkspaceId:    db.WorkspaceId,
		Type:           models.ActivityType(db.Type),
		ConversationId: db.ConversationId,
		Details:        db.Details,
		CreatedAt:      db.CreatedAt,
	}
	if db.UserId != nil {
		userId := models.UserId(*db.UserId)
		activity.UserId = &userId
	}
	return activity, nil
}
