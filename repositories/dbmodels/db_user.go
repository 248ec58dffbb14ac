package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBUser struct {
	Id             string     `db:"id"`
	Email          string     `db:"email"`
	Role           string     `db:"role"`
	OrganizationId string     `db:"organization_id"`
	FirstName      *string    `db:"first_name"`
	LastName       *string    `db:"last_name"`
	AvatarUrl      *string    `db:"avatar_url"`
	CreatedAt      time.Time  `db:"created_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

const TABLE_USERS = "system_users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	var firstName, lastName string
	if db.FirstName != nil {
		firstName = *db.FirstName
	}
	if db.LastName != nil {
		lastName = *db.LastName
	}
	return models.User{
		UserId:         models.UserId(db.Id),
		Email:          db.Email,
		Role:           models.RoleFromString(db.Role),
		OrganizationId: db.OrganizationId,
		FirstName:      firstName,
		LastName:       lastName,
		AvatarUrl:      db.AvatarUrl,
		CreatedAt:      db.CreatedAt,
		DeletedAt:      db.DeletedAt,
	}, nil
}
