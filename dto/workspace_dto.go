package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIWorkspace struct {
	Id             string      `json:"id"`
	OrganizationId string      `json:"organization_id"`
	Name           string      `json:"name"`
	PrimaryColor   null.String `json:"primary_color"`
	LogoUrl        null.String `json:"logo_url"`
	BannerUrl      null.String `json:"banner_url"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func AdaptWorkspaceDto(workspace models.Workspace) APIWorkspace {
	return APIWorkspace{
		Id:             workspace.Id,
		OrganizationId: workspace.OrganizationId,
		Name:           workspace.Name,
		PrimaryColor:   null.StringFromPtr(workspace.PrimaryColor),
		LogoUrl:        null.StringFromPtr(workspace.LogoUrl),
		BannerUrl:      null.StringFromPtr(workspace.BannerUrl),
		CreatedAt:      workspace.CreatedAt,
		UpdatedAt:      workspace.UpdatedAt,
	}
}

type CreateWorkspaceBody struct {
	Name string `json:"name" binding:"required"`
}

type UpdateWorkspaceBody struct {
	Name         *string `json:"name"`
	PrimaryColor *string `json:"primary_color"`
	LogoUrl      *string `json:"logo_url"`
	BannerUrl    *string `json:"banner_url"`
}

type APIWorkspaceMember struct {
	Id          string    `json:"id"`
	WorkspaceId string    `json:"workspace_id"`
	UserId      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptWorkspaceMemberDto(member models.WorkspaceMember) APIWorkspaceMember {
	return APIWorkspaceMember{
		Id:          member.Id,
		WorkspaceId: member.WorkspaceId,
		UserId:      string(member.UserId),
		Role:        string(member.Role),
		CreatedAt:   member.CreatedAt,
	}
}

type AddWorkspaceMemberBody struct {
	UserId string `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

type APIWorkspaceLimits struct {
	WorkspaceId     string `json:"workspace_id"`
	ConnectionLimit int    `json:"connection_limit"`
}

func AdaptWorkspaceLimitsDto(limits models.WorkspaceLimits) APIWorkspaceLimits {
	return APIWorkspaceLimits{
		WorkspaceId:     limits.WorkspaceId,
		ConnectionLimit: limits.ConnectionLimit,
	}
}
