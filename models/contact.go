package models

import "time"

type Contact struct {
	Id          string
	WorkspaceId string
	PhoneNumber string
	Name        string
	AvatarUrl   *string
	CreatedAt   time.Time
}

type CreateContactInput struct {
	WorkspaceId string
	PhoneNumber string
	Name        string
}
