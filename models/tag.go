package models

import "time"

type Tag struct {
	Id          string
	WorkspaceId string
	Name        string
	Color       *string
	CreatedAt   time.Time
}

type CreateTagInput struct {
	WorkspaceId string
	Name        string
	Color       *string
}

type UpdateTagInput struct {
	Id    string
	Name  *string
	Color *string
}

// ContactTag links a tag to a contact inside a workspace.
type ContactTag struct {
	Id        string
	ContactId string
	TagId     string
	CreatedAt time.Time
}
