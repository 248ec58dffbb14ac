package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBTag struct {
	Id          string    `db:"id"`
	WorkspaceId string    `db:"workspace_id"`
	Name        string    `db:"name"`
	Color       *string   `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_TAGS = "tags"

var SelectTagColumn = utils.ColumnList[DBTag]()

func AdaptTag(db DBTag) (models.Tag, error) {
	return models.Tag{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		Name:        db.Name,
		Color:       db.Color,
		CreatedAt:   db.CreatedAt,
	}, nil
}

type DBContactTag struct {
	Id        string    `db:"id"`
	ContactId string    `db:"contact_id"`
	TagId     string    `db:"tag_id"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_CONTACT_TAGS = "contact_tags"

var SelectContactTagColumn = utils.ColumnList[DBContactTag]()

func AdaptContactTag(db DBContactTag) (models.ContactTag, error) {
	return models.ContactTag{
		Id:        db.Id,
		ContactId: db.ContactId,
		TagId:     db.TagId,
		CreatedAt: db.CreatedAt,
	}, nil
}

// DBTagOfContact joins a tag row with the contact carrying it, used to hydrate
// conversation listings in one query.
type DBTagOfContact struct {
	DBTag
	ContactId string `db:"tagged_contact_id"`
}
