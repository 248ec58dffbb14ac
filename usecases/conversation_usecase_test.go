package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zapdesk/zapdesk-backend/mocks"
	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/pure_utils"
)

type ConversationUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity    *mocks.EnforceSecurity
	repository         *mocks.ConversationRepository
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction

	workspaceId    string
	conversationId string
	userId         models.UserId
	otherUserId    models.UserId
	pending        models.Conversation
	active         models.Conversation
	closed         models.Conversation

	repositoryError error
	securityError   error
}

func (suite *ConversationUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.repository = new(mocks.ConversationRepository)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}

	suite.workspaceId = "2e68f3a1-a5f9-4575-9a79-3d0d52b910f3"
	suite.conversationId = "8e8e77b4-6e97-4b86-8a35-1a4a7a4e1ef2"
	suite.userId = models.UserId("0f2d6a35-ef0e-4a1f-9cb9-9a9e0b6e19a1")
	suite.otherUserId = models.UserId("b7ef9ac1-92f5-41c8-bd39-bc9a85a9c68f")

	suite.pending = models.Conversation{
		Id:          suite.conversationId,
		WorkspaceId: suite.workspaceId,
		ContactId:   "contact-id",
		Status:      models.ConversationPending,
	}
	suite.active = models.Conversation{
		Id:             suite.conversationId,
		WorkspaceId:    suite.workspaceId,
		ContactId:      "contact-id",
		Status:         models.ConversationActive,
		AssignedUserId: pure_utils.Ptr(suite.otherUserId),
	}
	suite.closed = models.Conversation{
		Id:          suite.conversationId,
		WorkspaceId: suite.workspaceId,
		ContactId:   "contact-id",
		Status:      models.ConversationClosed,
	}

	suite.repositoryError = errors.New("some repository error")
	suite.securityError = errors.New("some security error")
}

func (suite *ConversationUsecaseTestSuite) makeUsecase() *ConversationUsecase {
	return &ConversationUsecase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    mocks.ExecutorFactory{},
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		credentials: models.Credentials{
			ActorIdentity:  models.Identity{UserId: suite.userId},
			OrganizationId: "org-id",
			Role:           models.AGENT,
		},
	}
}

func (suite *ConversationUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
}

func (suite *ConversationUsecaseTestSuite) Test_AcceptConversation_nominal() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.pending, nil)
	suite.enforceSecurity.On("AcceptConversation", suite.pending).Return(nil)
	suite.repository.On("AssignConversation", suite.transaction,
		suite.conversationId, suite.workspaceId, suite.userId).Return(true, nil)
	suite.repository.On("CreateActivity", suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(input models.CreateActivityInput) bool {
			return input.Type == models.ActivityConversationAccepted &&
				*input.ConversationId == suite.conversationId
		})).Return(nil)

	result, err := suite.makeUsecase().AcceptConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.AlreadyAssigned)
	assert.Equal(t, suite.userId, *result.AssignedUserId)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_AcceptConversation_race_lost() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.pending, nil)
	suite.enforceSecurity.On("AcceptConversation", suite.pending).Return(nil)
	suite.repository.On("AssignConversation", suite.transaction,
		suite.conversationId, suite.workspaceId, suite.userId).Return(false, nil)
	suite.repository.On("GetConversationById", suite.transaction, suite.conversationId).
		Return(suite.active, nil)

	result, err := suite.makeUsecase().AcceptConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.True(t, result.AlreadyAssigned)
	assert.Equal(t, suite.otherUserId, *result.AssignedUserId)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_AcceptConversation_closed() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.closed, nil)
	suite.enforceSecurity.On("AcceptConversation", suite.closed).Return(nil)
	suite.repository.On("AssignConversation", suite.transaction,
		suite.conversationId, suite.workspaceId, suite.userId).Return(false, nil)
	suite.repository.On("GetConversationById", suite.transaction, suite.conversationId).
		Return(suite.closed, nil)

	_, err := suite.makeUsecase().AcceptConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.ErrorIs(t, err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_AcceptConversation_wrong_workspace() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.pending, nil)

	_, err := suite.makeUsecase().AcceptConversation(
		context.Background(), "another-workspace", suite.conversationId)

	t := suite.T()
	assert.ErrorIs(t, err, models.NotFoundError)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_AcceptConversation_security_error() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.pending, nil)
	suite.enforceSecurity.On("AcceptConversation", suite.pending).Return(suite.securityError)

	_, err := suite.makeUsecase().AcceptConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.ErrorIs(t, err, suite.securityError)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_EndConversation_nominal() {
	assigned := suite.active
	assigned.AssignedUserId = pure_utils.Ptr(suite.userId)

	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(assigned, nil)
	suite.enforceSecurity.On("EndConversation", assigned).Return(nil)
	suite.repository.On("CloseConversation", suite.transaction,
		suite.conversationId, suite.workspaceId).Return(true, nil)
	suite.repository.On("CreateActivity", suite.transaction, mock.AnythingOfType("string"),
		mock.MatchedBy(func(input models.CreateActivityInput) bool {
			return input.Type == models.ActivityConversationEnded
		})).Return(nil)

	result, err := suite.makeUsecase().EndConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.True(t, result.Ended)
	assert.False(t, result.AlreadyClosed)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_EndConversation_already_closed_is_idempotent() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.closed, nil)

	result, err := suite.makeUsecase().EndConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.True(t, result.Ended)
	assert.True(t, result.AlreadyClosed)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_EndConversation_unassigned() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.pending, nil)

	_, err := suite.makeUsecase().EndConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.ErrorIs(t, err, models.ErrConversationNotAssigned)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_EndConversation_security_error() {
	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(suite.active, nil)
	suite.enforceSecurity.On("EndConversation", suite.active).Return(suite.securityError)

	_, err := suite.makeUsecase().EndConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.ErrorIs(t, err, suite.securityError)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_EndConversation_lost_closing_race() {
	assigned := suite.active
	assigned.AssignedUserId = pure_utils.Ptr(suite.userId)

	suite.repository.On("GetConversationById", nil, suite.conversationId).
		Return(assigned, nil)
	suite.enforceSecurity.On("EndConversation", assigned).Return(nil)
	suite.repository.On("CloseConversation", suite.transaction,
		suite.conversationId, suite.workspaceId).Return(false, nil)

	result, err := suite.makeUsecase().EndConversation(
		context.Background(), suite.workspaceId, suite.conversationId)

	t := suite.T()
	assert.NoError(t, err)
	assert.True(t, result.AlreadyClosed)

	suite.AssertExpectations()
}

func (suite *ConversationUsecaseTestSuite) Test_ListConversations_hydrates_tags() {
	filters := models.ConversationFilters{WorkspaceId: suite.workspaceId}
	tag := models.Tag{Id: "tag-id", WorkspaceId: suite.workspaceId, Name: "vip"}

	suite.enforceSecurity.On("ReadConversation", models.Conversation{}).Return(nil)
	suite.repository.On("ListConversations", nil, filters).
		Return([]models.Conversation{suite.pending}, nil)
	suite.repository.On("ListTagsOfContacts", nil, []string{suite.pending.ContactId}).
		Return(map[string][]models.Tag{suite.pending.ContactId: {tag}}, nil)

	result, err := suite.makeUsecase().ListConversations(context.Background(), filters)

	t := suite.T()
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, []models.Tag{tag}, result[0].Tags)

	suite.AssertExpectations()
}

func TestConversationUsecase(t *testing.T) {
	suite.Run(t, new(ConversationUsecaseTestSuite))
}
