package models

import "time"

type ChannelType string

const (
	ChannelWhatsapp ChannelType = "whatsapp"
)

type Channel struct {
	Id          string
	WorkspaceId string
	Name        string
	Type        ChannelType
	CreatedAt   time.Time
}

type ConnectionStatus string

const (
	ConnectionConnecting   ConnectionStatus = "connecting"
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

// Connection binds a channel to one gateway instance. InstanceName is the
// identifier the gateway knows the session by.
type Connection struct {
	Id           string
	WorkspaceId  string
	ChannelId    string
	InstanceName string
	Status       ConnectionStatus
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateConnectionInput struct {
	WorkspaceId  string
	ChannelId    string
	InstanceName string
}
