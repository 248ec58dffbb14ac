package models

import "time"

type UserId string

// User is a system user as cached by the frontend session: the identity behind
// the x-system-user-id / x-system-user-email header pair.
type User struct {
	UserId         UserId
	Email          string
	Role           Role
	OrganizationId string
	FirstName      string
	LastName       string
	AvatarUrl      *string
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

type CreateUser struct {
	Email          string
	Role           Role
	OrganizationId string
	FirstName      string
	LastName       string
}
