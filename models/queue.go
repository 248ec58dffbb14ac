package models

import "time"

// Queue holds pending conversations until an agent accepts them.
type Queue struct {
	Id          string
	WorkspaceId string
	Name        string
	Color       *string
	CreatedAt   time.Time
}

type CreateQueueInput struct {
	WorkspaceId string
	Name        string
	Color       *string
}

type UpdateQueueInput struct {
	Id    string
	Name  *string
	Color *string
}
