package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	AGENT
	SUPERVISOR
	ADMIN
	API_CLIENT
	PLATFORM_ADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case AGENT:
		return "AGENT"
	case SUPERVISOR:
		return "SUPERVISOR"
	case ADMIN:
		return "ADMIN"
	case API_CLIENT:
		return "API_CLIENT"
	case PLATFORM_ADMIN:
		return "PLATFORM_ADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "AGENT":
		return AGENT
	case "SUPERVISOR":
		return SUPERVISOR
	case "ADMIN":
		return ADMIN
	case "API_CLIENT":
		return API_CLIENT
	case "PLATFORM_ADMIN":
		return PLATFORM_ADMIN
	}
	return NO_ROLE
}
