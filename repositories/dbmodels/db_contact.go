package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBContact struct {
	Id          string    `db:"id"`
	WorkspaceId string    `db:"workspace_id"`
	PhoneNumber string    `db:"phone_number"`
	Name        string    `db:"name"`
	AvatarUrl   *string   `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_CONTACTS = "contacts"

var SelectContactColumn = utils.ColumnList[DBContact]()

func AdaptContact(db DBContact) (models.Contact, error) {
	return models.Contact{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		PhoneNumber: db.PhoneNumber,
		Name:        db.Name,
		AvatarUrl:   db.AvatarUrl,
		CreatedAt:   db.CreatedAt,
	}, nil
}
