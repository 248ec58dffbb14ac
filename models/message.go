package models

import "time"

type MessageDirection string

const (
	MessageInbound  MessageDirection = "inbound"
	MessageOutbound MessageDirection = "outbound"
)

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeAudio MessageType = "audio"
	MessageTypeFile  MessageType = "file"
)

type Message struct {
	Id             string
	ConversationId string
	WorkspaceId    string
	Direction      MessageDirection
	Type           MessageType
	Content        string
	MediaUrl       *string
	SenderUserId   *UserId
	// GatewayMessageId is the id assigned by the messaging gateway, used to
	// deduplicate webhook deliveries.
	GatewayMessageId *string
	CreatedAt        time.Time
}

type SendMessageInput struct {
	ConversationId string
	WorkspaceId    string
	Content        string
	Type           MessageType
	SenderUserId   UserId
}

type CreateMessageInput struct {
	ConversationId   string
	WorkspaceId      string
	Direction        MessageDirection
	Type             MessageType
	Content          string
	MediaUrl         *string
	SenderUserId     *UserId
	GatewayMessageId *string
}
