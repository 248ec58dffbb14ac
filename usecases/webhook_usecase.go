package usecases

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type InboundWebhookUsecaseRepository interface {
	GetInstanceToken(ctx context.Context, exec repositories.Executor,
		instanceName string) (*models.InstanceToken, error)
	GetConnectionByInstanceName(ctx context.Context, exec repositories.Executor,
		instanceName string) (models.Connection, error)
	UpdateConnectionStatus(ctx context.Context, exec repositories.Executor,
		connectionId string, status models.ConnectionStatus, phoneNumber *string) error
	ContactByPhoneNumber(ctx context.Context, exec repositories.Executor,
		workspaceId string, phoneNumber string) (*models.Contact, error)
	CreateContact(ctx context.Context, exec repositories.Executor,
		newContactId string, input models.CreateContactInput) error
	FindOpenConversationByContact(ctx context.Context, exec repositories.Executor,
		workspaceId string, contactId string) (*models.Conversation, error)
	CreateConversation(ctx context.Context, exec repositories.Executor,
		newConversationId string, input models.CreateConversationInput) error
	MessageByGatewayId(ctx context.Context, exec repositories.Executor,
		workspaceId string, gatewayMessageId string) (*models.Message, error)
	CreateMessage(ctx context.Context, exec repositories.Executor,
		newMessageId string, input models.CreateMessageInput) error
	TouchConversationLastMessageAt(ctx context.Context, exec repositories.Executor,
		conversationId string) error
	GetMessagingSettings(ctx context.Context, exec repositories.Executor,
		workspaceId string) (*models.MessagingSettings, error)
}

type webhookAutomationRepository interface {
	TriggerChatAutomation(ctx context.Context,
		request models.ChatAutomationRequest) (models.ChatAutomationResponse, error)
}

type webhookGatewayRepository interface {
	SendTextMessage(ctx context.Context, config models.EvolutionConfig,
		instanceName string, phoneNumber string, text string) (string, error)
}

// InboundWebhookUsecase ingests gateway event deliveries. It runs outside the
// user authentication path: deliveries are authenticated by the per-instance
// token minted when the webhook was configured.
type InboundWebhookUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         InboundWebhookUsecaseRepository
	automation         webhookAutomationRepository
	gatewayRepository  webhookGatewayRepository
	evolutionConfig    infra.EvolutionConfiguration
}

// AuthenticateInstance checks the delivery token and returns the connection
// the instance belongs to.
func (usecase *InboundWebhookUsecase) AuthenticateInstance(ctx context.Context,
	instanceName, token string,
) (models.Connection, error) {
	exec := usecase.executorFactory.NewExecutor()

	instanceToken, err := usecase.repository.GetInstanceToken(ctx, exec, instanceName)
	if err != nil {
		return models.Connection{}, err
	}
	if instanceToken == nil ||
		subtle.ConstantTimeCompare([]byte(instanceToken.Token), []byte(token)) != 1 {
		return models.Connection{}, errors.Wrap(models.UnAuthorizedError,
			"invalid webhook token")
	}
	return usecase.repository.GetConnectionByInstanceName(ctx, exec, instanceName)
}

func (usecase *InboundWebhookUsecase) HandleEvent(ctx context.Context,
	connection models.Connection, event models.GatewayEvent,
) error {
	logger := utils.LoggerFromContext(ctx)

	switch event.Event {
	case "MESSAGES_UPSERT":
		return usecase.handleMessageUpsert(ctx, connection, event)
	case "CONNECTION_UPDATE":
		return usecase.handleConnectionUpdate(ctx, connection, event)
	case "QRCODE_UPDATED":
		// Nothing to persist, the frontend polls the gateway directly.
		logger.DebugContext(ctx, "gateway qrcode updated",
			"instance", event.InstanceName)
		return nil
	default:
		logger.DebugContext(ctx, "ignoring unknown gateway event",
			"event", event.Event, "instance", event.InstanceName)
		return nil
	}
}

func (usecase *InboundWebhookUsecase) handleConnectionUpdate(ctx context.Context,
	connection models.Connection, event models.GatewayEvent,
) error {
	state, _ := event.Data["state"].(string)
	var status models.ConnectionStatus
	switch strings.ToLower(state) {
	case "open":
		status = models.ConnectionConnected
	case "connecting":
		status = models.ConnectionConnecting
	default:
		status = models.ConnectionDisconnected
	}

	var phoneNumber *string
	if number, ok := event.Data["wuid"].(string); ok && number != "" {
		number = normalizePhoneNumber(number)
		phoneNumber = &number
	}

	return usecase.repository.UpdateConnectionStatus(ctx,
		usecase.executorFactory.NewExecutor(), connection.Id, status, phoneNumber)
}

func (usecase *InboundWebhookUsecase) handleMessageUpsert(ctx context.Context,
	connection models.Connection, event models.GatewayEvent,
) error {
	delivery, err := parseMessageUpsert(event.Data)
	if err != nil {
		return err
	}
	if delivery.fromMe {
		// Echo of an outbound message, already stored on the send path.
		return nil
	}

	workspaceId := connection.WorkspaceId

	// stored is only set when this delivery committed the message row. A
	// dropped redelivery rolls back with ErrIgnoreRollBackError, which the
	// transaction runner swallows, so the returned error cannot be used to
	// tell the two outcomes apart.
	var conversation models.Conversation
	var stored bool
	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if delivery.gatewayMessageId != "" {
			existing, err := usecase.repository.MessageByGatewayId(ctx, tx,
				workspaceId, delivery.gatewayMessageId)
			if err != nil {
				return err
			}
			if existing != nil {
				// Redelivery, drop it but do not fail the webhook.
				return models.ErrIgnoreRollBackError
			}
		}

		contact, err := usecase.repository.ContactByPhoneNumber(ctx, tx,
			workspaceId, delivery.phoneNumber)
		if err != nil {
			return err
		}
		if contact == nil {
			newContactId := utils.NewPrimaryKey()
			err := usecase.repository.CreateContact(ctx, tx, newContactId,
				models.CreateContactInput{
					WorkspaceId: workspaceId,
					PhoneNumber: delivery.phoneNumber,
					Name:        delivery.pushName,
				})
			if err != nil {
				return err
			}
			contact = &models.Contact{Id: newContactId, WorkspaceId: workspaceId}
		}

		open, err := usecase.repository.FindOpenConversationByContact(ctx, tx,
			workspaceId, contact.Id)
		if err != nil {
			return err
		}
		if open == nil {
			newConversationId := utils.NewPrimaryKey()
			err := usecase.repository.CreateConversation(ctx, tx, newConversationId,
				models.CreateConversationInput{
					WorkspaceId: workspaceId,
					ContactId:   contact.Id,
					ChannelId:   &connection.ChannelId,
				})
			if err != nil {
				return err
			}
			open = &models.Conversation{Id: newConversationId, WorkspaceId: workspaceId}
		}
		conversation = *open

		var gatewayMessageId *string
		if delivery.gatewayMessageId != "" {
			gatewayMessageId = &delivery.gatewayMessageId
		}
		err = usecase.repository.CreateMessage(ctx, tx, utils.NewPrimaryKey(),
			models.CreateMessageInput{
				ConversationId:   conversation.Id,
				WorkspaceId:      workspaceId,
				Direction:        models.MessageInbound,
				Type:             models.MessageTypeText,
				Content:          delivery.text,
				GatewayMessageId: gatewayMessageId,
			})
		if err != nil {
			if repositories.IsUniqueViolationError(err) {
				// Concurrent redelivery hit the unique gateway id index.
				return models.ErrIgnoreRollBackError
			}
			return err
		}
		if err := usecase.repository.TouchConversationLastMessageAt(ctx, tx, conversation.Id); err != nil {
			return err
		}
		stored = true
		return nil
	})
	if err != nil {
		return err
	}
	if !stored {
		// Dropped redelivery, the customer already got any automated reply
		// on the first delivery.
		return nil
	}

	return usecase.maybeAutoReply(ctx, connection, conversation, delivery)
}

// maybeAutoReply asks the workflow engine for an assistant reply when the
// workspace has automation enabled and the conversation is still unassigned.
func (usecase *InboundWebhookUsecase) maybeAutoReply(ctx context.Context,
	connection models.Connection, conversation models.Conversation, delivery messageDelivery,
) error {
	exec := usecase.executorFactory.NewExecutor()
	logger := utils.LoggerFromContext(ctx)

	settings, err := usecase.repository.GetMessagingSettings(ctx, exec, conversation.WorkspaceId)
	if err != nil {
		return err
	}
	if settings == nil || !settings.AiEnabled || conversation.IsAssigned() {
		return nil
	}

	response, err := usecase.automation.TriggerChatAutomation(ctx, models.ChatAutomationRequest{
		WorkspaceId:    conversation.WorkspaceId,
		ConversationId: conversation.Id,
		PhoneNumber:    delivery.phoneNumber,
		Message:        delivery.text,
	})
	if err != nil {
		// The inbound message is already stored, a failed reply only gets logged.
		logger.WarnContext(ctx, "chat automation failed",
			"conversation_id", conversation.Id, "error", err.Error())
		return nil
	}
	if !response.Active || response.Response == "" {
		return nil
	}

	gatewayConfig, err := resolveGatewayConfig(settings, usecase.evolutionConfig)
	if err != nil {
		return err
	}

	// Reply through the instance the message came in on.
	gatewayMessageId, err := usecase.gatewayRepository.SendTextMessage(ctx, gatewayConfig,
		connection.InstanceName, delivery.phoneNumber, response.Response)
	if err != nil {
		logger.WarnContext(ctx, "failed to send automated reply",
			"conversation_id", conversation.Id, "error", err.Error())
		return nil
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.CreateMessage(ctx, tx, utils.NewPrimaryKey(),
			models.CreateMessageInput{
				ConversationId:   conversation.Id,
				WorkspaceId:      conversation.WorkspaceId,
				Direction:        models.MessageOutbound,
				Type:             models.MessageTypeText,
				Content:          response.Response,
				GatewayMessageId: &gatewayMessageId,
			})
		if err != nil {
			return err
		}
		return usecase.repository.TouchConversationLastMessageAt(ctx, tx, conversation.Id)
	})
}

type messageDelivery struct {
	phoneNumber      string
	pushName         string
	text             string
	gatewayMessageId string
	fromMe           bool
}

func parseMessageUpsert(data map[string]any) (messageDelivery, error) {
	key, _ := data["key"].(map[string]any)
	if key == nil {
		return messageDelivery{}, errors.Wrap(models.BadParameterError,
			"malformed message event: missing key")
	}

	remoteJid, _ := key["remoteJid"].(string)
	if remoteJid == "" {
		return messageDelivery{}, errors.Wrap(models.BadParameterError,
			"malformed message event: missing remoteJid")
	}

	delivery := messageDelivery{
		phoneNumber: normalizePhoneNumber(remoteJid),
	}
	delivery.fromMe, _ = key["fromMe"].(bool)
	delivery.gatewayMessageId, _ = key["id"].(string)
	delivery.pushName, _ = data["pushName"].(string)

	if message, ok := data["message"].(map[string]any); ok {
		if text, ok := message["conversation"].(string); ok {
			delivery.text = text
		} else if extended, ok := message["extendedTextMessage"].(map[string]any); ok {
			delivery.text, _ = extended["text"].(string)
		}
	}
	return delivery, nil
}

// normalizePhoneNumber strips the jid suffix the gateway appends to numbers
// ("5511999999999@s.whatsapp.net").
func normalizePhoneNumber(jid string) string {
	if at := strings.IndexByte(jid, '@'); at >= 0 {
		return jid[:at]
	}
	return jid
}
