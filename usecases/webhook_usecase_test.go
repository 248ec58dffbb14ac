package usecases

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zapdesk/zapdesk-backend/mocks"
	"github.com/zapdesk/zapdesk-backend/models"
)

func TestParseMessageUpsert(t *testing.T) {
	t.Run("plain conversation message", func(t *testing.T) {
		delivery, err := parseMessageUpsert(map[string]any{
			"key": map[string]any{
				"remoteJid": "5511999999999@s.whatsapp.net",
				"fromMe":    false,
				"id":        "ABCDEF123",
			},
			"pushName": "Maria",
			"message": map[string]any{
				"conversation": "hello there",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "5511999999999", delivery.phoneNumber)
		assert.Equal(t, "Maria", delivery.pushName)
		assert.Equal(t, "hello there", delivery.text)
		assert.Equal(t, "ABCDEF123", delivery.gatewayMessageId)
		assert.False(t, delivery.fromMe)
	})

	t.Run("extended text message", func(t *testing.T) {
		delivery, err := parseMessageUpsert(map[string]any{
			"key": map[string]any{
				"remoteJid": "5511888888888@s.whatsapp.net",
				"fromMe":    true,
				"id":        "XYZ",
			},
			"message": map[string]any{
				"extendedTextMessage": map[string]any{"text": "a link"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "a link", delivery.text)
		assert.True(t, delivery.fromMe)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		_, err := parseMessageUpsert(map[string]any{"message": map[string]any{}})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("missing remoteJid is rejected", func(t *testing.T) {
		_, err := parseMessageUpsert(map[string]any{
			"key": map[string]any{"id": "ABC"},
		})
		assert.ErrorIs(t, err, models.BadParameterError)
	})
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "5511999999999", normalizePhoneNumber("5511999999999@s.whatsapp.net"))
	assert.Equal(t, "5511999999999", normalizePhoneNumber("5511999999999"))
}

func TestResolveGatewayConfigAndInstance(t *testing.T) {
	envConfig := testEvolutionConfiguration()

	t.Run("falls back to env configuration", func(t *testing.T) {
		config, err := resolveGatewayConfig(nil, envConfig)
		assert.NoError(t, err)
		assert.Equal(t, envConfig.BaseUrl, config.BaseUrl)
		assert.Equal(t, envConfig.ApiKey, config.ApiKey)
	})

	t.Run("workspace settings override", func(t *testing.T) {
		baseUrl := "https://gateway.acme.test"
		apiKey := "workspace-key"
		config, err := resolveGatewayConfig(&models.MessagingSettings{
			BaseUrl: &baseUrl,
			ApiKey:  &apiKey,
		}, envConfig)
		assert.NoError(t, err)
		assert.Equal(t, baseUrl, config.BaseUrl)
		assert.Equal(t, apiKey, config.ApiKey)
	})

	t.Run("no gateway at all", func(t *testing.T) {
		_, err := resolveGatewayConfig(nil, testEmptyEvolutionConfiguration())
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("default instance wins", func(t *testing.T) {
		instance := "main-instance"
		name, err := resolveInstanceName(&models.MessagingSettings{DefaultInstance: &instance},
			[]models.Connection{{InstanceName: "other"}})
		assert.NoError(t, err)
		assert.Equal(t, instance, name)
	})

	t.Run("single connection fallback", func(t *testing.T) {
		name, err := resolveInstanceName(nil, []models.Connection{{InstanceName: "only-one"}})
		assert.NoError(t, err)
		assert.Equal(t, "only-one", name)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := resolveInstanceName(nil, nil)
		assert.ErrorIs(t, err, models.BadParameterError)
	})
}

type InboundWebhookUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.InboundWebhookRepository
	automation         *mocks.AutomationRepository
	gateway            *mocks.EvolutionGateway
	transaction        *mocks.Transaction
	transactionFactory *mocks.TransactionFactory

	workspaceId string
	connection  models.Connection
	event       models.GatewayEvent
	contact     models.Contact
	open        models.Conversation
}

func (suite *InboundWebhookUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.InboundWebhookRepository)
	suite.automation = new(mocks.AutomationRepository)
	suite.gateway = new(mocks.EvolutionGateway)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}

	suite.workspaceId = "2e68f3a1-a5f9-4575-9a79-3d0d52b910f3"
	suite.connection = models.Connection{
		Id:           "connection-id",
		WorkspaceId:  suite.workspaceId,
		ChannelId:    "channel-id",
		InstanceName: "main",
	}
	suite.event = models.GatewayEvent{
		Event:        "MESSAGES_UPSERT",
		InstanceName: "main",
		Data: map[string]any{
			"key": map[string]any{
				"remoteJid": "5511999999999@s.whatsapp.net",
				"fromMe":    false,
				"id":        "ABCDEF123",
			},
			"pushName": "Maria",
			"message":  map[string]any{"conversation": "hello"},
		},
	}
	suite.contact = models.Contact{Id: "contact-id", WorkspaceId: suite.workspaceId}
	suite.open = models.Conversation{
		Id:          "conversation-id",
		WorkspaceId: suite.workspaceId,
		ContactId:   suite.contact.Id,
		Status:      models.ConversationPending,
	}
}

func (suite *InboundWebhookUsecaseTestSuite) makeUsecase() *InboundWebhookUsecase {
	return &InboundWebhookUsecase{
		executorFactory:    mocks.ExecutorFactory{},
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		automation:         suite.automation,
		gatewayRepository:  suite.gateway,
		evolutionConfig:    testEvolutionConfiguration(),
	}
}

func (suite *InboundWebhookUsecaseTestSuite) Test_HandleEvent_storedMessageConsultsAutomation() {
	suite.repository.On("MessageByGatewayId", suite.transaction,
		suite.workspaceId, "ABCDEF123").Return(nil, nil)
	suite.repository.On("ContactByPhoneNumber", suite.transaction,
		suite.workspaceId, "5511999999999").Return(&suite.contact, nil)
	suite.repository.On("FindOpenConversationByContact", suite.transaction,
		suite.workspaceId, suite.contact.Id).Return(&suite.open, nil)
	suite.repository.On("CreateMessage", suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(input models.CreateMessageInput) bool {
			return input.Direction == models.MessageInbound &&
				input.ConversationId == suite.open.Id
		})).Return(nil)
	suite.repository.On("TouchConversationLastMessageAt", suite.transaction,
		suite.open.Id).Return(nil)
	suite.repository.On("GetMessagingSettings", nil, suite.workspaceId).Return(nil, nil)

	err := suite.makeUsecase().HandleEvent(context.Background(), suite.connection, suite.event)

	t := suite.T()
	assert.NoError(t, err)
	suite.repository.AssertExpectations(t)
	suite.automation.AssertNotCalled(t, "TriggerChatAutomation", mock.Anything)
}

func (suite *InboundWebhookUsecaseTestSuite) Test_HandleEvent_autoRepliesWhenEnabled() {
	settings := models.MessagingSettings{WorkspaceId: suite.workspaceId, AiEnabled: true}

	suite.repository.On("MessageByGatewayId", suite.transaction,
		suite.workspaceId, "ABCDEF123").Return(nil, nil)
	suite.repository.On("ContactByPhoneNumber", suite.transaction,
		suite.workspaceId, "5511999999999").Return(&suite.contact, nil)
	suite.repository.On("FindOpenConversationByContact", suite.transaction,
		suite.workspaceId, suite.contact.Id).Return(&suite.open, nil)
	suite.repository.On("CreateMessage", suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(input models.CreateMessageInput) bool {
			return input.Direction == models.MessageInbound
		})).Return(nil)
	suite.repository.On("GetMessagingSettings", nil, suite.workspaceId).Return(&settings, nil)
	suite.automation.On("TriggerChatAutomation", mock.MatchedBy(
		func(request models.ChatAutomationRequest) bool {
			return request.ConversationId == suite.open.Id &&
				request.Message == "hello"
		})).Return(models.ChatAutomationResponse{Response: "hi there", Active: true}, nil)
	suite.gateway.On("SendTextMessage", mock.Anything, "main",
		"5511999999999", "hi there").Return("WAMID-REPLY", nil)
	suite.repository.On("CreateMessage", suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(input models.CreateMessageInput) bool {
			return input.Direction == models.MessageOutbound &&
				input.Content == "hi there"
		})).Return(nil)
	suite.repository.On("TouchConversationLastMessageAt", suite.transaction,
		suite.open.Id).Return(nil)

	err := suite.makeUsecase().HandleEvent(context.Background(), suite.connection, suite.event)

	t := suite.T()
	assert.NoError(t, err)
	suite.repository.AssertExpectations(t)
	suite.automation.AssertExpectations(t)
	suite.gateway.AssertExpectations(t)
}

func (suite *InboundWebhookUsecaseTestSuite) Test_HandleEvent_redeliveryIsDropped() {
	suite.repository.On("MessageByGatewayId", suite.transaction,
		suite.workspaceId, "ABCDEF123").Return(&models.Message{Id: "message-id"}, nil)

	err := suite.makeUsecase().HandleEvent(context.Background(), suite.connection, suite.event)

	t := suite.T()
	assert.NoError(t, err)
	suite.repository.AssertNotCalled(t, "CreateMessage",
		mock.Anything, mock.Anything, mock.Anything)
	suite.automation.AssertNotCalled(t, "TriggerChatAutomation", mock.Anything)
}

func (suite *InboundWebhookUsecaseTestSuite) Test_HandleEvent_concurrentRedeliveryDoesNotAutoReply() {
	suite.repository.On("MessageByGatewayId", suite.transaction,
		suite.workspaceId, "ABCDEF123").Return(nil, nil)
	suite.repository.On("ContactByPhoneNumber", suite.transaction,
		suite.workspaceId, "5511999999999").Return(&suite.contact, nil)
	suite.repository.On("FindOpenConversationByContact", suite.transaction,
		suite.workspaceId, suite.contact.Id).Return(&suite.open, nil)
	// A racing delivery committed the same gateway message id first.
	suite.repository.On("CreateMessage", suite.transaction, mock.AnythingOfType("string"),
		mock.Anything).Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := suite.makeUsecase().HandleEvent(context.Background(), suite.connection, suite.event)

	t := suite.T()
	assert.NoError(t, err)
	suite.repository.AssertNotCalled(t, "TouchConversationLastMessageAt",
		mock.Anything, mock.Anything)
	suite.repository.AssertNotCalled(t, "GetMessagingSettings",
		mock.Anything, mock.Anything)
	suite.automation.AssertNotCalled(t, "TriggerChatAutomation", mock.Anything)
}

func TestInboundWebhookUsecase(t *testing.T) {
	suite.Run(t, new(InboundWebhookUsecaseTestSuite))
}
