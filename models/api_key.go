package models

import "time"

// ApiKey authenticates server-to-server callers, chiefly the workflow engine
// behind the automation path.
type ApiKey struct {
	Id             string
	OrganizationId string
	Description    string
	Hash           []byte
	Role           Role
	CreatedAt      time.Time
}
