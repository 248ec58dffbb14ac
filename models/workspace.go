package models

import "time"

// Workspace is the tenant-scoping unit: every resource and every scoped request
// belongs to exactly one workspace.
type Workspace struct {
	Id             string
	OrganizationId string
	Name           string
	// Display/theming attributes, served to the frontend before login styling.
	PrimaryColor *string
	LogoUrl      *string
	BannerUrl    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateWorkspaceInput struct {
	OrganizationId string
	Name           string
}

type UpdateWorkspaceInput struct {
	Id           string
	Name         *string
	PrimaryColor *string
	LogoUrl      *string
	BannerUrl    *string
}

type WorkspaceMemberRole string

const (
	WorkspaceMemberRoleAgent      WorkspaceMemberRole = "agent"
	WorkspaceMemberRoleSupervisor WorkspaceMemberRole = "supervisor"
	WorkspaceMemberRoleAdmin      WorkspaceMemberRole = "admin"
)

type WorkspaceMember struct {
	Id          string
	WorkspaceId string
	UserId      UserId
	Role        WorkspaceMemberRole
	CreatedAt   time.Time
}

// WorkspaceLimits caps the number of gateway connections a workspace may hold.
type WorkspaceLimits struct {
	WorkspaceId     string
	ConnectionLimit int
}

const DefaultConnectionLimit = 1
