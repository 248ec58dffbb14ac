package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIChannel struct {
	Id          string    `json:"id"`
	WorkspaceId string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptChannelDto(channel models.Channel) APIChannel {
	return APIChannel{
		Id:          channel.Id,
		WorkspaceId: channel.WorkspaceId,
		Name:        channel.Name,
		Type:        string(channel.Type),
		CreatedAt:   channel.CreatedAt,
	}
}

type APIConnection struct {
	Id           string      `json:"id"`
	WorkspaceId  string      `json:"workspace_id"`
	ChannelId    string      `json:"channel_id"`
	InstanceName string      `json:"instance_name"`
	Status       string      `json:"status"`
	PhoneNumber  null.String `json:"phone_number"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func AdaptConnectionDto(connection models.Connection) APIConnection {
	return APIConnection{
		Id:           connection.Id,
		WorkspaceId:  connection.WorkspaceId,
		ChannelId:    connection.ChannelId,
		InstanceName: connection.InstanceName,
		Status:       string(connection.Status),
		PhoneNumber:  null.StringFromPtr(connection.PhoneNumber),
		CreatedAt:    connection.CreatedAt,
		UpdatedAt:    connection.UpdatedAt,
	}
}

type CreateConnectionBody struct {
	ChannelId    string `json:"channel_id" binding:"required,uuid"`
	InstanceName string `json:"instance_name" binding:"required,instance_name"`
}
