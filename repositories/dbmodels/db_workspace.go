package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBWorkspace struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	Name           string    `db:"name"`
	PrimaryColor   *string   `db:"primary_color"`
	LogoUrl        *string   `db:"logo_url"`
	BannerUrl      *string   `db:"banner_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const TABLE_WORKSPACES = "workspaces"

var SelectWorkspaceColumn = utils.ColumnList[DBWorkspace]()

func AdaptWorkspace(db DBWorkspace) (models.Workspace, error) {
	return models.Workspace{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		PrimaryColor:   db.PrimaryColor,
		LogoUrl:        db.LogoUrl,
		BannerUrl:      db.BannerUrl,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}

type DBWorkspaceMember struct {
	Id          string    `db:"id"`
	WorkspaceId string    `db:"workspace_id"`
	UserId      string    `db:"user_id"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_WORKSPACE_MEMBERS = "workspace_members"

var SelectWorkspaceMemberColumn = utils.ColumnList[DBWorkspaceMember]()

func AdaptWorkspaceMember(db DBWorkspaceMember) (models.WorkspaceMember, error) {
	return models.WorkspaceMember{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		UserId:      models.UserId(db.UserId),
		Role:        models.WorkspaceMemberRole(db.Role),
		CreatedAt:   db.CreatedAt,
	}, nil
}
