package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBApiKey struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	Description    string    `db:"description"`
	Hash           []byte    `db:"key_hash"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_API_KEYS = "api_keys"

var SelectApiKeyColumn = utils.ColumnList[DBApiKey]()

func AdaptApiKey(db DBApiKey) (models.ApiKey, error) {
	return models.ApiKey{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Description:    db.Description,
		Hash:           db.Hash,
		Role:           models.RoleFromString(db.Role),
		CreatedAt:      db.CreatedAt,
	}, nil
}
